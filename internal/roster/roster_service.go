package roster

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	"freshbit/internal/invitation"
	invitationerrors "freshbit/internal/invitation/errors"
	rostererrors "freshbit/internal/roster/errors"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Preview(ctx context.Context, p domain.Principal, driveID uuid.UUID, filename string, file io.Reader) (ValidationResult, error)
	Confirm(ctx context.Context, p domain.Principal, driveID uuid.UUID, req ConfirmRequest) (ConfirmResponse, error)
	ListStudents(ctx context.Context, p domain.Principal, filter StudentFilter) ([]StudentResponse, int64, error)
	UpdateStudent(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateStudentRequest) (StudentResponse, error)
	DeleteStudent(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	drives   drive.Repository
	bindings invitation.Repository
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	drives drive.Repository,
	bindings invitation.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		drives:   drives,
		bindings: bindings,
		logger:   l,
		now:      time.Now,
	}
}

// requireAcceptedBinding roster hanya untuk college yang sudah ACCEPT undangan
// drive yang belum ditutup.
func requireAcceptedBinding(ctx context.Context, drives drive.Repository, bindings invitation.Repository, p domain.Principal, driveID uuid.UUID) error {
	if !p.IsCollege() || p.OrgID == uuid.Nil {
		return apperror.ErrForbidden
	}
	d, err := drives.GetByID(ctx, driveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return driveerrors.ErrDriveNotFound
		}
		return err
	}
	b, err := bindings.Get(ctx, driveID, p.OrgID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invitationerrors.ErrCollegeNotInvited
		}
		return err
	}
	if b.InvitationStatus != invitation.StatusAccepted {
		return invitationerrors.ErrInvitationNotAccepted
	}
	if d.Status == drive.StatusClosed {
		return invitationerrors.ErrDriveClosed
	}
	return nil
}

func (s *service) Preview(ctx context.Context, p domain.Principal, driveID uuid.UUID, filename string, file io.Reader) (ValidationResult, error) {
	if err := requireAcceptedBinding(ctx, s.drives, s.bindings, p, driveID); err != nil {
		return ValidationResult{}, err
	}

	rows, err := Parse(filename, file)
	if err != nil {
		return ValidationResult{}, err
	}
	existing, err := s.repo.ExistingEmails(ctx, p.OrgID, Emails(rows))
	if err != nil {
		s.logger.Error("lookup existing students failed", zap.String("college_id", p.OrgID.String()), zap.Error(err))
		return ValidationResult{}, err
	}

	result := Validate(rows, existing)
	s.logger.Info("roster previewed",
		zap.String("drive_id", driveID.String()),
		zap.String("college_id", p.OrgID.String()),
		zap.Int("total", result.Total),
		zap.Int("invalid", result.Invalid),
	)
	return result, nil
}

// Confirm memvalidasi ulang lalu insert + link di satu tx. Email yang sudah
// terdaftar di college dipakai ulang, bukan ditolak; unique constraint yang
// menentukan pemenang kalau dua confirm berjalan bersamaan.
func (s *service) Confirm(ctx context.Context, p domain.Principal, driveID uuid.UUID, req ConfirmRequest) (ConfirmResponse, error) {
	if len(req.Rows) == 0 {
		return ConfirmResponse{}, rostererrors.ErrEmptyRoster
	}
	if len(req.Rows) > MaxRows {
		return ConfirmResponse{}, rostererrors.ErrTooManyRows
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ConfirmResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	if err := requireAcceptedBinding(ctx, s.drives.WithTx(tx), s.bindings.WithTx(tx), p, driveID); err != nil {
		return ConfirmResponse{}, err
	}

	validated := Validate(req.Rows, nil)
	now := s.now().UTC()
	resp := ConfirmResponse{Results: make([]ConfirmRowResult, 0, len(validated.Rows))}

	created := make(map[string]bool, validated.Valid)
	emails := make([]string, 0, validated.Valid)
	for _, row := range validated.Rows {
		if !row.Valid {
			continue
		}
		st := &Student{
			ID:             uuid.New(),
			CollegeID:      p.OrgID,
			Name:           row.Row.Name,
			Email:          row.Row.Email,
			Phone:          row.Row.Phone,
			RollNo:         row.Row.RollNo,
			Branch:         row.Row.Branch,
			CGPA:           row.CGPA,
			GraduationYear: row.GraduationYear,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		ok, err := qtx.InsertStudent(ctx, st)
		if err != nil {
			s.logger.Error("insert student failed", zap.Int("line", row.Row.Line), zap.Error(err))
			return ConfirmResponse{}, err
		}
		created[st.Email] = ok
		emails = append(emails, st.Email)
	}

	ids, err := qtx.IDsByEmail(ctx, p.OrgID, emails)
	if err != nil {
		return ConfirmResponse{}, err
	}

	for _, row := range validated.Rows {
		out := ConfirmRowResult{Line: row.Row.Line, Email: row.Row.Email}
		if !row.Valid {
			out.Outcome = OutcomeInvalid
			out.Reasons = row.Reasons
			resp.Invalid++
			resp.Results = append(resp.Results, out)
			continue
		}

		studentID, ok := ids[row.Row.Email]
		if !ok {
			return ConfirmResponse{}, apperror.ErrInternal
		}
		out.StudentID = studentID.String()

		linked, err := qtx.LinkStudent(ctx, &DriveStudent{
			DriveID:   driveID,
			StudentID: studentID,
			CollegeID: p.OrgID,
			CreatedAt: now,
		})
		if err != nil {
			s.logger.Error("link student failed", zap.String("student_id", studentID.String()), zap.Error(err))
			return ConfirmResponse{}, err
		}

		switch {
		case !linked:
			out.Outcome = OutcomeSkipped
			resp.Skipped++
		case created[row.Row.Email]:
			out.Outcome = OutcomeInserted
			resp.Inserted++
			resp.Linked++
		default:
			out.Outcome = OutcomeLinked
			resp.Linked++
		}
		resp.Results = append(resp.Results, out)
	}

	if err := tx.Commit(); err != nil {
		return ConfirmResponse{}, err
	}

	s.logger.Info("roster confirmed",
		zap.String("drive_id", driveID.String()),
		zap.String("college_id", p.OrgID.String()),
		zap.Int("inserted", resp.Inserted),
		zap.Int("linked", resp.Linked),
		zap.Int("skipped", resp.Skipped),
		zap.Int("invalid", resp.Invalid),
	)
	return resp, nil
}

func (s *service) ListStudents(ctx context.Context, p domain.Principal, filter StudentFilter) ([]StudentResponse, int64, error) {
	if !p.IsCollege() || p.OrgID == uuid.Nil {
		return nil, 0, apperror.ErrForbidden
	}
	rows, total, err := s.repo.ListStudents(ctx, p.OrgID, filter)
	if err != nil {
		s.logger.Error("list students failed", zap.String("college_id", p.OrgID.String()), zap.Error(err))
		return nil, 0, err
	}
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return out, total, nil
}

func (s *service) ownStudent(ctx context.Context, p domain.Principal, id uuid.UUID) (*Student, error) {
	if id == uuid.Nil {
		return nil, rostererrors.ErrInvalidStudentID
	}
	if !p.IsCollege() {
		return nil, apperror.ErrForbidden
	}
	st, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rostererrors.ErrStudentNotFound
		}
		return nil, err
	}
	// student college lain diperlakukan tidak ada
	if !p.OwnsCollege(st.CollegeID) {
		return nil, rostererrors.ErrStudentNotFound
	}
	return st, nil
}

func (s *service) UpdateStudent(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateStudentRequest) (StudentResponse, error) {
	st, err := s.ownStudent(ctx, p, id)
	if err != nil {
		return StudentResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return StudentResponse{}, apperror.RequiredField("Name")
		}
		st.Name = name
	}
	if req.Email != nil {
		st.Email = NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		st.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.RollNo != nil {
		st.RollNo = strings.TrimSpace(*req.RollNo)
	}
	if req.Branch != nil {
		st.Branch = strings.TrimSpace(*req.Branch)
	}
	if req.CGPA != nil {
		st.CGPA = req.CGPA
	}
	if req.GraduationYear != nil {
		st.GraduationYear = req.GraduationYear
	}
	st.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateStudent(ctx, st); err != nil {
		if database.IsUniqueViolation(err, "uq_students_college_email") {
			return StudentResponse{}, rostererrors.ErrEmailTaken
		}
		s.logger.Error("update student failed", zap.String("student_id", id.String()), zap.Error(err))
		return StudentResponse{}, err
	}
	return toResponse(st), nil
}

func (s *service) DeleteStudent(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if _, err := s.ownStudent(ctx, p, id); err != nil {
		return err
	}
	applied, err := s.repo.HasApplications(ctx, id)
	if err != nil {
		return err
	}
	if applied {
		return rostererrors.ErrStudentHasApplied
	}
	if err := s.repo.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rostererrors.ErrStudentNotFound
		}
		return err
	}
	s.logger.Info("student deleted", zap.String("student_id", id.String()))
	return nil
}

func toResponse(st *Student) StudentResponse {
	return StudentResponse{
		ID:             st.ID.String(),
		CollegeID:      st.CollegeID.String(),
		Name:           st.Name,
		Email:          st.Email,
		Phone:          st.Phone,
		RollNo:         st.RollNo,
		Branch:         st.Branch,
		CGPA:           st.CGPA,
		GraduationYear: st.GraduationYear,
		CreatedAt:      st.CreatedAt,
		UpdatedAt:      st.UpdatedAt,
	}
}
