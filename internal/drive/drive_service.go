package drive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"freshbit/internal/domain"
	driveerrors "freshbit/internal/drive/errors"
	"freshbit/internal/events"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompanyApproval dipenuhi company.Service.
type CompanyApproval interface {
	EnsureApproved(ctx context.Context, companyID uuid.UUID) error
}

// StageAuthorizer memutuskan siapa boleh memajukan pipeline sebuah college dan
// scope mana yang berlaku (college sendiri atau uuid.Nil untuk pipeline drive).
// Implementasinya ada di modul invitation (aturan binding).
type StageAuthorizer interface {
	AuthorizeStageAdvance(ctx context.Context, d *Drive, collegeID uuid.UUID, p domain.Principal) (uuid.UUID, error)
	PipelineScope(ctx context.Context, driveID, collegeID uuid.UUID) (uuid.UUID, error)
}

//go:generate mockgen -source=drive_service.go -destination=mock/drive_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, p domain.Principal, req CreateDriveRequest) (DriveResponse, error)
	List(ctx context.Context, p domain.Principal, filter ListFilter) ([]DriveResponse, int64, error)
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error)
	Update(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateDriveRequest) (DriveResponse, error)
	Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error
	Publish(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error)
	ActivateNextStage(ctx context.Context, p domain.Principal, id uuid.UUID, collegeID *uuid.UUID) (StageAdvanceResponse, error)
	Close(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error)
	Stages(ctx context.Context, p domain.Principal, id uuid.UUID, collegeID *uuid.UUID) (PipelineResponse, error)
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	counter    counter.Repository
	companies  CompanyApproval
	authorizer StageAuthorizer
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	companies CompanyApproval,
	authorizer StageAuthorizer,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("drive.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("drive.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		counter:    counterRepo,
		companies:  companies,
		authorizer: authorizer,
		outbox:     outbox,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, p domain.Principal, req CreateDriveRequest) (DriveResponse, error) {
	if !p.IsCompany() || p.OrgID == uuid.Nil {
		return DriveResponse{}, apperror.ErrForbidden
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return DriveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriveResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).NextValue(ctx, p.OrgID.String(), counter.TypeDriveCode)
	if err != nil {
		s.logger.Error("next drive code failed", zap.String("company_id", p.OrgID.String()), zap.Error(err))
		return DriveResponse{}, err
	}

	now := s.now().UTC()
	d := &Drive{
		ID:          uuid.New(),
		CompanyID:   p.OrgID,
		Code:        fmt.Sprintf("DRV-%06d", seq),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		JobRole:     strings.TrimSpace(req.JobRole),
		CTC:         strings.TrimSpace(req.CTC),
		Location:    strings.TrimSpace(req.Location),
		Eligibility: strings.TrimSpace(req.Eligibility),
		StartDate:   start,
		EndDate:     end,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.WithTx(tx).Create(ctx, d); err != nil {
		s.logger.Error("create drive failed", zap.String("company_id", p.OrgID.String()), zap.Error(err))
		return DriveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DriveResponse{}, err
	}

	s.logger.Info("drive created", zap.String("drive_id", d.ID.String()), zap.String("code", d.Code))
	return toResponse(d, ""), nil
}

func (s *service) List(ctx context.Context, p domain.Principal, filter ListFilter) ([]DriveResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, p, filter)
	if err != nil {
		s.logger.Error("list drives failed", zap.String("role", string(p.Role)), zap.Error(err))
		return nil, 0, err
	}
	out := make([]DriveResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i].Drive, rows[i].CompanyName))
	}
	return out, total, nil
}

func (s *service) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error) {
	row, err := s.visible(ctx, p, id)
	if err != nil {
		return DriveResponse{}, err
	}
	return toResponse(&row.Drive, row.CompanyName), nil
}

func (s *service) visible(ctx context.Context, p domain.Principal, id uuid.UUID) (*DriveWithCompany, error) {
	if id == uuid.Nil {
		return nil, driveerrors.ErrInvalidDriveID
	}
	row, err := s.repo.GetVisible(ctx, p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, driveerrors.ErrDriveNotFound
		}
		return nil, err
	}
	return row, nil
}

// owned memuat drive dan memastikan pemanggil pemiliknya (admin boleh kalau allowAdmin).
func (s *service) owned(ctx context.Context, repo Repository, p domain.Principal, id uuid.UUID, lock, allowAdmin bool) (*Drive, error) {
	if id == uuid.Nil {
		return nil, driveerrors.ErrInvalidDriveID
	}
	var (
		d   *Drive
		err error
	)
	if lock {
		d, err = repo.GetForUpdate(ctx, id)
	} else {
		d, err = repo.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, driveerrors.ErrDriveNotFound
		}
		return nil, err
	}
	if p.OwnsCompany(d.CompanyID) || (allowAdmin && p.IsAdmin()) {
		return d, nil
	}
	if p.IsCompany() {
		return nil, driveerrors.ErrNotDriveOwner
	}
	return nil, apperror.ErrForbidden
}

func (s *service) Update(ctx context.Context, p domain.Principal, id uuid.UUID, req UpdateDriveRequest) (DriveResponse, error) {
	d, err := s.owned(ctx, s.repo, p, id, false, false)
	if err != nil {
		return DriveResponse{}, err
	}
	if err := CanEdit(d.Status); err != nil {
		return DriveResponse{}, err
	}

	if req.Title != nil {
		d.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		d.Description = strings.TrimSpace(*req.Description)
	}
	if req.JobRole != nil {
		role := strings.TrimSpace(*req.JobRole)
		if role == "" {
			return DriveResponse{}, apperror.RequiredField("Job Role")
		}
		d.JobRole = role
	}
	if req.CTC != nil {
		d.CTC = strings.TrimSpace(*req.CTC)
	}
	if req.Location != nil {
		d.Location = strings.TrimSpace(*req.Location)
	}
	if req.Eligibility != nil {
		d.Eligibility = strings.TrimSpace(*req.Eligibility)
	}
	if req.StartDate != nil || req.EndDate != nil {
		startRaw, endRaw := formatDate(d.StartDate), formatDate(d.EndDate)
		if req.StartDate != nil {
			startRaw = *req.StartDate
		}
		if req.EndDate != nil {
			endRaw = *req.EndDate
		}
		start, end, err := parseDateRange(startRaw, endRaw)
		if err != nil {
			return DriveResponse{}, err
		}
		d.StartDate, d.EndDate = start, end
	}
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("update drive failed", zap.String("drive_id", id.String()), zap.Error(err))
		return DriveResponse{}, err
	}
	return toResponse(d, ""), nil
}

func (s *service) Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	if _, err := s.owned(ctx, qtx, p, id, true, false); err != nil {
		return err
	}
	has, err := qtx.HasApplications(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return driveerrors.ErrDriveHasApplications
	}
	if err := qtx.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return driveerrors.ErrDriveNotFound
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("drive deleted", zap.String("drive_id", id.String()))
	return nil
}

func (s *service) Publish(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriveResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	d, err := s.owned(ctx, qtx, p, id, true, false)
	if err != nil {
		return DriveResponse{}, err
	}
	if err := CanPublish(d.Status); err != nil {
		return DriveResponse{}, err
	}
	if err := s.companies.EnsureApproved(ctx, d.CompanyID); err != nil {
		return DriveResponse{}, err
	}

	now := s.now().UTC()
	stage := StageApplications
	d.Status = StatusPublished
	d.CurrentStage = &stage
	d.PublishedAt = &now
	d.UpdatedAt = now

	if err := qtx.SaveLifecycle(ctx, d); err != nil {
		return DriveResponse{}, err
	}
	if err := qtx.SeedStages(ctx, d.ID, uuid.Nil, now); err != nil {
		s.logger.Error("seed drive stages failed", zap.String("drive_id", id.String()), zap.Error(err))
		return DriveResponse{}, err
	}
	if err := s.queue(ctx, tx, d, events.DriveEvent{
		EventType: events.EventDrivePublished,
		Stage:     string(stage),
		Status:    string(d.Status),
		ActorID:   p.UserID.String(),
	}); err != nil {
		return DriveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DriveResponse{}, err
	}

	s.logger.Info("drive published", zap.String("drive_id", id.String()))
	return toResponse(d, ""), nil
}

func (s *service) ActivateNextStage(ctx context.Context, p domain.Principal, id uuid.UUID, collegeID *uuid.UUID) (StageAdvanceResponse, error) {
	if id == uuid.Nil {
		return StageAdvanceResponse{}, driveerrors.ErrInvalidDriveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StageAdvanceResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	// kunci baris drive: advance paralel pada drive yang sama jadi berurutan
	d, err := qtx.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StageAdvanceResponse{}, driveerrors.ErrDriveNotFound
		}
		return StageAdvanceResponse{}, err
	}
	if err := CanAdvance(d.Status); err != nil {
		return StageAdvanceResponse{}, err
	}

	scope := uuid.Nil
	if collegeID != nil && *collegeID != uuid.Nil {
		if scope, err = s.authorizer.AuthorizeStageAdvance(ctx, d, *collegeID, p); err != nil {
			return StageAdvanceResponse{}, err
		}
	} else if !p.IsAdmin() && !p.OwnsCompany(d.CompanyID) {
		if p.IsCompany() {
			return StageAdvanceResponse{}, driveerrors.ErrNotDriveOwner
		}
		return StageAdvanceResponse{}, apperror.ErrForbidden
	}

	stages, err := qtx.ListStages(ctx, id, scope)
	if err != nil {
		return StageAdvanceResponse{}, err
	}
	if len(stages) == 0 {
		return StageAdvanceResponse{}, driveerrors.ErrPipelineMissing
	}

	next, completed, activated, err := PipelineOf(stages).Advance()
	if err != nil {
		return StageAdvanceResponse{}, err
	}

	now := s.now().UTC()
	if err := qtx.SaveAdvance(ctx, id, scope, completed, activated, p.UserID, now); err != nil {
		s.logger.Error("save stage advance failed",
			zap.String("drive_id", id.String()),
			zap.String("scope", scope.String()),
			zap.Error(err),
		)
		return StageAdvanceResponse{}, err
	}
	current, _ := next.Current()
	if err := qtx.SetScopeStage(ctx, id, scope, current); err != nil {
		return StageAdvanceResponse{}, err
	}
	if scope == uuid.Nil {
		d.CurrentStage = &current
	}

	ev := events.DriveEvent{
		EventType: events.EventStageAdvanced,
		Stage:     string(current),
		Status:    string(StageActive),
		ActorID:   p.UserID.String(),
	}
	if activated == "" {
		ev.Status = string(StageCompleted)
	}
	if scope != uuid.Nil {
		ev.CollegeID = scope.String()
	}
	if err := s.queue(ctx, tx, d, ev); err != nil {
		return StageAdvanceResponse{}, err
	}

	updated, err := qtx.ListStages(ctx, id, scope)
	if err != nil {
		return StageAdvanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return StageAdvanceResponse{}, err
	}

	s.logger.Info("stage advanced",
		zap.String("drive_id", id.String()),
		zap.String("scope", scope.String()),
		zap.String("completed", string(completed)),
		zap.String("activated", string(activated)),
	)
	return StageAdvanceResponse{
		PipelineResponse: toPipelineResponse(id, scope, updated),
		Completed:        string(completed),
		Activated:        string(activated),
	}, nil
}

func (s *service) Close(ctx context.Context, p domain.Principal, id uuid.UUID) (DriveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriveResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	d, err := s.owned(ctx, qtx, p, id, true, true)
	if err != nil {
		return DriveResponse{}, err
	}
	if !ShouldClose(d.Status) {
		return toResponse(d, ""), nil
	}

	if err := s.closeDrive(ctx, tx, qtx, d, p.UserID); err != nil {
		return DriveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DriveResponse{}, err
	}
	s.logger.Info("drive closed", zap.String("drive_id", id.String()))
	return toResponse(d, ""), nil
}

func (s *service) closeDrive(ctx context.Context, tx *sql.Tx, qtx Repository, d *Drive, actor uuid.UUID) error {
	now := s.now().UTC()
	d.Status = StatusClosed
	d.ClosedAt = &now
	d.UpdatedAt = now
	if err := qtx.SaveLifecycle(ctx, d); err != nil {
		return err
	}
	ev := events.DriveEvent{EventType: events.EventDriveClosed, Status: string(StatusClosed)}
	if actor != uuid.Nil {
		ev.ActorID = actor.String()
	}
	return s.queue(ctx, tx, d, ev)
}

func (s *service) Stages(ctx context.Context, p domain.Principal, id uuid.UUID, collegeID *uuid.UUID) (PipelineResponse, error) {
	if _, err := s.visible(ctx, p, id); err != nil {
		return PipelineResponse{}, err
	}
	scope := uuid.Nil
	if collegeID != nil && *collegeID != uuid.Nil {
		if p.IsCollege() && *collegeID != p.OrgID {
			return PipelineResponse{}, apperror.ErrForbidden
		}
		var err error
		if scope, err = s.authorizer.PipelineScope(ctx, id, *collegeID); err != nil {
			return PipelineResponse{}, err
		}
	}

	stages, err := s.repo.ListStages(ctx, id, scope)
	if err != nil {
		return PipelineResponse{}, err
	}
	return toPipelineResponse(id, scope, stages), nil
}

// CloseExpired menutup drive PUBLISHED yang end_date-nya sudah lewat. Tiap drive
// punya tx sendiri, satu gagal tidak menggagalkan yang lain.
func (s *service) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expired, err := s.repo.ListExpired(ctx, today, 200)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, candidate := range expired {
		ok, err := s.closeOne(ctx, candidate.ID)
		if err != nil {
			s.logger.Warn("close expired drive failed", zap.String("drive_id", candidate.ID.String()), zap.Error(err))
			continue
		}
		if ok {
			closed++
		}
	}
	if closed > 0 {
		s.logger.Info("expired drives closed", zap.Int("count", closed))
	}
	return closed, nil
}

func (s *service) closeOne(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	d, err := qtx.GetForUpdate(ctx, id)
	if err != nil {
		return false, err
	}
	// status bisa berubah sejak ListExpired
	if d.Status != StatusPublished {
		return false, nil
	}
	if err := s.closeDrive(ctx, tx, qtx, d, uuid.Nil); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (s *service) queue(ctx context.Context, tx *sql.Tx, d *Drive, ev events.DriveEvent) error {
	ev.DriveID = d.ID.String()
	ev.DriveTitle = d.Title
	ev.CompanyID = d.CompanyID.String()
	if err := events.QueueDriveEvent(ctx, s.outbox, tx, "drive", d.ID.String(), ev); err != nil {
		s.logger.Error("drive event outbox persist failed",
			zap.String("drive_id", d.ID.String()),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseDateRange(startRaw, endRaw string) (*time.Time, *time.Time, error) {
	start, err := parseDate(startRaw, "Start Date")
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDate(endRaw, "End Date")
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, driveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func parseDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toResponse(d *Drive, companyName string) DriveResponse {
	resp := DriveResponse{
		ID:          d.ID.String(),
		CompanyID:   d.CompanyID.String(),
		CompanyName: companyName,
		Code:        d.Code,
		Title:       d.Title,
		Description: d.Description,
		JobRole:     d.JobRole,
		CTC:         d.CTC,
		Location:    d.Location,
		Eligibility: d.Eligibility,
		StartDate:   formatDate(d.StartDate),
		EndDate:     formatDate(d.EndDate),
		Status:      string(d.Status),
		PublishedAt: d.PublishedAt,
		ClosedAt:    d.ClosedAt,
		CreatedAt:   d.CreatedAt,
	}
	if d.CurrentStage != nil {
		resp.CurrentStage = string(*d.CurrentStage)
	}
	return resp
}

func toPipelineResponse(driveID, scope uuid.UUID, stages []Stage) PipelineResponse {
	resp := PipelineResponse{DriveID: driveID.String(), Stages: make([]StageResponse, 0, len(stages))}
	if scope != uuid.Nil {
		resp.CollegeID = scope.String()
	}
	for _, st := range stages {
		sr := StageResponse{
			Name:        string(st.Name),
			Position:    st.Position,
			Status:      string(st.Status),
			StartedAt:   st.StartedAt,
			CompletedAt: st.CompletedAt,
		}
		if st.CompletedBy != nil {
			sr.CompletedBy = st.CompletedBy.String()
		}
		resp.Stages = append(resp.Stages, sr)
	}
	if current, ok := PipelineOf(stages).Current(); ok && len(stages) > 0 {
		resp.CurrentStage = string(current)
	}
	return resp
}
