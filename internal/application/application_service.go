package application

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	applicationerrors "freshbit/internal/application/errors"
	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	"freshbit/internal/events"
	"freshbit/internal/invitation"
	invitationerrors "freshbit/internal/invitation/errors"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateApplications(ctx context.Context, p domain.Principal, driveID uuid.UUID, req CreateRequest) (CreateResult, error)
	UpdateStatus(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateStatusRequest) (ApplicationResponse, error)
	Bulk(ctx context.Context, p domain.Principal, driveID uuid.UUID, target Status, req BulkRequest) (BulkResult, error)
	List(ctx context.Context, p domain.Principal, driveID uuid.UUID, filter ListFilter) ([]ApplicationResponse, int64, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	drives   drive.Repository
	bindings invitation.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	drives drive.Repository,
	bindings invitation.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		drives:   drives,
		bindings: bindings,
		outbox:   outbox,
		logger:   l,
		now:      time.Now,
	}
}

// BulkTargets status tujuan tiap aksi selection.
var BulkTargets = map[string]Status{
	"shortlist": StatusShortlisted,
	"interview": StatusInInterview,
	"final":     StatusSelected,
	"reject":    StatusRejected,
}

func loadDrive(ctx context.Context, repo drive.Repository, id uuid.UUID) (*drive.Drive, error) {
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, driveerrors.ErrDriveNotFound
		}
		return nil, err
	}
	return d, nil
}

// evaluator company pemilik drive atau admin.
func evaluator(p domain.Principal, d *drive.Drive) error {
	if p.IsAdmin() || p.OwnsCompany(d.CompanyID) {
		return nil
	}
	if p.IsCompany() {
		return driveerrors.ErrNotDriveOwner
	}
	return apperror.ErrForbidden
}

func parseIDs(raw []string, field string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, apperror.InvalidField(field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *service) CreateApplications(ctx context.Context, p domain.Principal, driveID uuid.UUID, req CreateRequest) (CreateResult, error) {
	collegeID, err := resolveCollege(p, req.CollegeID)
	if err != nil {
		return CreateResult{}, err
	}
	studentIDs, err := parseIDs(req.StudentIDs, "student_ids")
	if err != nil {
		return CreateResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreateResult{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	d, err := loadDrive(ctx, s.drives.WithTx(tx), driveID)
	if err != nil {
		return CreateResult{}, err
	}
	if err := drive.CanAdvance(d.Status); err != nil {
		return CreateResult{}, err
	}
	b, err := s.bindings.WithTx(tx).Get(ctx, driveID, collegeID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CreateResult{}, invitationerrors.ErrCollegeNotInvited
		}
		return CreateResult{}, err
	}
	if b.InvitationStatus != invitation.StatusAccepted {
		return CreateResult{}, invitationerrors.ErrInvitationNotAccepted
	}
	stages, _, err := invitation.ScopeStages(ctx, s.drives.WithTx(tx), driveID, b)
	if err != nil {
		return CreateResult{}, err
	}
	if active, ok := drive.PipelineOf(stages).Active(); !ok || active != drive.StageApplications {
		return CreateResult{}, applicationerrors.ErrApplicationsShut
	}

	linked, err := qtx.LinkedStudents(ctx, driveID, collegeID)
	if err != nil {
		return CreateResult{}, err
	}
	eligible := make(map[uuid.UUID]bool, len(linked))
	for _, id := range linked {
		eligible[id] = true
	}
	if len(studentIDs) == 0 {
		studentIDs = linked
	}

	now := s.now().UTC()
	result := CreateResult{Results: make([]CreateOutcome, 0, len(studentIDs))}
	seen := make(map[uuid.UUID]bool, len(studentIDs))
	for _, sid := range studentIDs {
		out := CreateOutcome{StudentID: sid.String()}
		switch {
		case seen[sid]:
			out.Outcome = OutcomeSkippedDuplicate
			result.Skipped++
		case !eligible[sid]:
			out.Outcome = OutcomeNotEligible
			result.NotEligible++
		default:
			app := &Application{
				ID:        uuid.New(),
				DriveID:   driveID,
				StudentID: sid,
				CollegeID: collegeID,
				Status:    StatusApplied,
				CreatedAt: now,
				UpdatedAt: now,
			}
			created, err := qtx.Insert(ctx, app)
			if err != nil {
				s.logger.Error("insert application failed", zap.String("student_id", sid.String()), zap.Error(err))
				return CreateResult{}, err
			}
			if created {
				out.Outcome = OutcomeCreated
				out.ApplicationID = app.ID.String()
				result.Created++
			} else {
				out.Outcome = OutcomeSkippedDuplicate
				result.Skipped++
			}
		}
		seen[sid] = true
		result.Results = append(result.Results, out)
	}

	if err := tx.Commit(); err != nil {
		return CreateResult{}, err
	}
	s.logger.Info("applications created",
		zap.String("drive_id", driveID.String()),
		zap.String("college_id", collegeID.String()),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("not_eligible", result.NotEligible),
	)
	return result, nil
}

// resolveCollege college memakai org sendiri; admin wajib menyebut college_id.
func resolveCollege(p domain.Principal, raw string) (uuid.UUID, error) {
	var requested uuid.UUID
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, apperror.InvalidField("college_id")
		}
		requested = id
	}
	switch {
	case p.IsAdmin():
		if requested == uuid.Nil {
			return uuid.Nil, applicationerrors.ErrCollegeRequired
		}
		return requested, nil
	case p.IsCollege() && p.OrgID != uuid.Nil:
		if requested != uuid.Nil && requested != p.OrgID {
			return uuid.Nil, invitationerrors.ErrNotInvitedCollege
		}
		return p.OrgID, nil
	default:
		return uuid.Nil, apperror.ErrForbidden
	}
}

// stageReached memakai pipeline yang mengatur binding college: scope college
// untuk binding COLLEGE, pipeline drive untuk binding ADMIN.
func (s *service) stageReached(ctx context.Context, drives drive.Repository, bindings invitation.Repository, driveID, collegeID uuid.UUID, target Status) error {
	stage, gated := RequiredStage(target)
	if !gated {
		return nil
	}
	b, err := bindings.Get(ctx, driveID, collegeID, false)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		b = nil
	}
	stages, _, err := invitation.ScopeStages(ctx, drives, driveID, b)
	if err != nil {
		return err
	}
	if !drive.PipelineOf(stages).Reached(stage) {
		return applicationerrors.ErrStageNotReached
	}
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateStatusRequest) (ApplicationResponse, error) {
	if id == uuid.Nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationID
	}
	target := Status(req.Status)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)
	dtx := s.drives.WithTx(tx)

	app, err := qtx.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}
	d, err := loadDrive(ctx, dtx, app.DriveID)
	if err != nil {
		return ApplicationResponse{}, err
	}
	if err := evaluator(p, d); err != nil {
		return ApplicationResponse{}, err
	}
	if err := drive.CanAdvance(d.Status); err != nil {
		return ApplicationResponse{}, err
	}
	if err := CheckTransition(app.Status, target); err != nil {
		return ApplicationResponse{}, err
	}
	if err := s.stageReached(ctx, dtx, s.bindings.WithTx(tx), d.ID, app.CollegeID, target); err != nil {
		return ApplicationResponse{}, err
	}

	now := s.now().UTC()
	ok, err := qtx.CompareAndSetStatus(ctx, app.ID, app.Status, target, now)
	if err != nil {
		s.logger.Error("update application status failed", zap.String("application_id", id.String()), zap.Error(err))
		return ApplicationResponse{}, err
	}
	if !ok {
		return ApplicationResponse{}, applicationerrors.ErrStatusChanged
	}
	from := app.Status
	app.Status = target
	app.UpdatedAt = now

	if err := s.queue(ctx, tx, d, app.CollegeID, target, p.UserID, 1); err != nil {
		return ApplicationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ApplicationResponse{}, err
	}

	s.logger.Info("application status updated",
		zap.String("application_id", id.String()),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
	)
	return toResponse(ApplicationView{Application: *app}), nil
}

// Bulk menerapkan satu transisi ke banyak student. Tiap item berdiri sendiri;
// hanya syarat drive (kepemilikan, status, stage) yang menggagalkan batch.
func (s *service) Bulk(ctx context.Context, p domain.Principal, driveID uuid.UUID, target Status, req BulkRequest) (BulkResult, error) {
	collegeID, err := uuid.Parse(req.CollegeID)
	if err != nil {
		return BulkResult{}, apperror.InvalidField("college_id")
	}
	studentIDs, err := parseIDs(req.StudentIDs, "student_ids")
	if err != nil {
		return BulkResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkResult{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)
	dtx := s.drives.WithTx(tx)

	d, err := loadDrive(ctx, dtx, driveID)
	if err != nil {
		return BulkResult{}, err
	}
	if err := evaluator(p, d); err != nil {
		return BulkResult{}, err
	}
	if err := drive.CanAdvance(d.Status); err != nil {
		return BulkResult{}, err
	}
	if err := s.stageReached(ctx, dtx, s.bindings.WithTx(tx), driveID, collegeID, target); err != nil {
		return BulkResult{}, err
	}

	apps, err := qtx.FindByStudents(ctx, driveID, collegeID, studentIDs)
	if err != nil {
		return BulkResult{}, err
	}
	byStudent := make(map[uuid.UUID]Application, len(apps))
	for _, a := range apps {
		byStudent[a.StudentID] = a
	}

	now := s.now().UTC()
	result := BulkResult{Target: string(target), Results: make([]BulkOutcome, 0, len(studentIDs))}
	for _, sid := range studentIDs {
		out := BulkOutcome{StudentID: sid.String()}
		app, ok := byStudent[sid]
		if !ok {
			out.Outcome = OutcomeNotFound
			result.NotFound++
			result.Results = append(result.Results, out)
			continue
		}
		out.ApplicationID = app.ID.String()
		out.Status = string(app.Status)

		if CheckTransition(app.Status, target) != nil {
			out.Outcome = OutcomeSkippedWrongState
			result.Skipped++
			result.Results = append(result.Results, out)
			continue
		}
		changed, err := qtx.CompareAndSetStatus(ctx, app.ID, app.Status, target, now)
		if err != nil {
			s.logger.Error("bulk status update failed", zap.String("application_id", app.ID.String()), zap.Error(err))
			return BulkResult{}, err
		}
		if !changed {
			// didahului request lain
			out.Outcome = OutcomeSkippedWrongState
			result.Skipped++
		} else {
			out.Outcome = OutcomeApplied
			out.Status = string(target)
			result.Applied++
			// student yang sama dua kali di request: item kedua lihat status baru
			app.Status = target
			byStudent[sid] = app
		}
		result.Results = append(result.Results, out)
	}

	if result.Applied > 0 {
		if err := s.queue(ctx, tx, d, collegeID, target, p.UserID, result.Applied); err != nil {
			return BulkResult{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return BulkResult{}, err
	}

	s.logger.Info("bulk selection applied",
		zap.String("drive_id", driveID.String()),
		zap.String("college_id", collegeID.String()),
		zap.String("target", string(target)),
		zap.Int("applied", result.Applied),
		zap.Int("skipped", result.Skipped),
		zap.Int("not_found", result.NotFound),
	)
	return result, nil
}

func (s *service) List(ctx context.Context, p domain.Principal, driveID uuid.UUID, filter ListFilter) ([]ApplicationResponse, int64, error) {
	d, err := loadDrive(ctx, s.drives, driveID)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case p.IsAdmin(), p.OwnsCompany(d.CompanyID):
	case p.IsCollege():
		b, err := s.bindings.Get(ctx, driveID, p.OrgID, false)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, invitationerrors.ErrCollegeNotInvited
			}
			return nil, 0, err
		}
		if b.InvitationStatus != invitation.StatusAccepted {
			return nil, 0, invitationerrors.ErrInvitationNotAccepted
		}
		filter.CollegeID = p.OrgID
	case p.IsCompany():
		return nil, 0, driveerrors.ErrNotDriveOwner
	default:
		return nil, 0, apperror.ErrForbidden
	}

	rows, total, err := s.repo.List(ctx, driveID, filter)
	if err != nil {
		s.logger.Error("list applications failed", zap.String("drive_id", driveID.String()), zap.Error(err))
		return nil, 0, err
	}
	out := make([]ApplicationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, total, nil
}

func (s *service) queue(ctx context.Context, tx *sql.Tx, d *drive.Drive, collegeID uuid.UUID, status Status, actor uuid.UUID, count int) error {
	ev := events.DriveEvent{
		EventType:  events.EventApplicationStatusChanged,
		DriveID:    d.ID.String(),
		DriveTitle: d.Title,
		CompanyID:  d.CompanyID.String(),
		CollegeID:  collegeID.String(),
		Status:     string(status),
		ActorID:    actor.String(),
		Count:      count,
	}
	if err := events.QueueDriveEvent(ctx, s.outbox, tx, "application", d.ID.String()+":"+collegeID.String(), ev); err != nil {
		s.logger.Error("application event outbox persist failed", zap.String("drive_id", d.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func toResponse(v ApplicationView) ApplicationResponse {
	return ApplicationResponse{
		ID:           v.ID.String(),
		DriveID:      v.DriveID.String(),
		StudentID:    v.StudentID.String(),
		CollegeID:    v.CollegeID.String(),
		Status:       string(v.Status),
		StudentName:  v.StudentName,
		StudentEmail: v.StudentEmail,
		RollNo:       v.RollNo,
		Branch:       v.Branch,
		CGPA:         v.CGPA,
		CollegeName:  v.CollegeName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
