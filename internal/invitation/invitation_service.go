package invitation

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/drive"
	driveerrors "freshbit/internal/drive/errors"
	"freshbit/internal/events"
	invitationerrors "freshbit/internal/invitation/errors"
	"freshbit/internal/messaging/kafka"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CollegeDirectory dipenuhi college.Service.
type CollegeDirectory interface {
	Approvals(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type Service interface {
	Invite(ctx context.Context, p domain.Principal, driveID uuid.UUID, req InviteRequest) (InviteResult, error)
	Respond(ctx context.Context, p domain.Principal, invitationID uuid.UUID, req RespondRequest) (BindingResponse, error)
	UpdateBinding(ctx context.Context, p domain.Principal, driveID, collegeID uuid.UUID, req UpdateBindingRequest) (BindingResponse, error)
	ListForDrive(ctx context.Context, p domain.Principal, driveID uuid.UUID) ([]BindingResponse, error)
	ListForCollege(ctx context.Context, p domain.Principal, filter CollegeFilter) ([]BindingResponse, int64, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	drives   drive.Repository
	colleges CollegeDirectory
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	drives drive.Repository,
	colleges CollegeDirectory,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invitation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invitation.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		drives:   drives,
		colleges: colleges,
		outbox:   outbox,
		logger:   l,
		now:      time.Now,
	}
}

func loadDrive(ctx context.Context, repo drive.Repository, id uuid.UUID, lock bool) (*drive.Drive, error) {
	var (
		d   *drive.Drive
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
	return d, nil
}

func (s *service) Invite(ctx context.Context, p domain.Principal, driveID uuid.UUID, req InviteRequest) (InviteResult, error) {
	if !p.IsCompany() {
		return InviteResult{}, apperror.ErrForbidden
	}
	managedBy := ManagedByCollege
	if req.ManagedBy != "" {
		managedBy = ManagedBy(req.ManagedBy)
	}

	// urutan input dipertahankan, duplikat di request dianggap sudah terikat
	ids := make([]uuid.UUID, 0, len(req.CollegeIDs))
	seen := make(map[uuid.UUID]bool, len(req.CollegeIDs))
	dup := make([]bool, 0, len(req.CollegeIDs))
	for _, raw := range req.CollegeIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return InviteResult{}, apperror.InvalidField("college_ids")
		}
		ids = append(ids, id)
		dup = append(dup, seen[id])
		seen[id] = true
	}
	if len(ids) == 0 {
		return InviteResult{}, apperror.RequiredField("College Ids")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InviteResult{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)

	d, err := loadDrive(ctx, s.drives.WithTx(tx), driveID, true)
	if err != nil {
		return InviteResult{}, err
	}
	if !p.OwnsCompany(d.CompanyID) {
		return InviteResult{}, driveerrors.ErrNotDriveOwner
	}
	if d.Status == drive.StatusClosed {
		return InviteResult{}, invitationerrors.ErrDriveClosed
	}

	approvals, err := s.colleges.Approvals(ctx, ids)
	if err != nil {
		return InviteResult{}, err
	}

	now := s.now().UTC()
	result := InviteResult{Results: make([]InviteOutcome, 0, len(ids))}
	for i, id := range ids {
		outcome := InviteOutcome{CollegeID: id.String()}
		approved, known := approvals[id]
		switch {
		case dup[i]:
			outcome.Outcome = OutcomeSkippedConflict
			result.Skipped++
		case !known:
			outcome.Outcome = OutcomeNotFound
			result.Failed++
		case !approved:
			outcome.Outcome = OutcomeNotApproved
			result.Failed++
		default:
			b := &Binding{
				ID:               uuid.New(),
				DriveID:          d.ID,
				CollegeID:        id,
				InvitationStatus: StatusPending,
				ManagedBy:        managedBy,
				InvitedAt:        now,
				UpdatedAt:        now,
			}
			created, err := qtx.InsertIfAbsent(ctx, b)
			if err != nil {
				s.logger.Error("insert binding failed",
					zap.String("drive_id", d.ID.String()),
					zap.String("college_id", id.String()),
					zap.Error(err),
				)
				return InviteResult{}, err
			}
			if !created {
				outcome.Outcome = OutcomeSkippedConflict
				result.Skipped++
				break
			}
			outcome.Outcome = OutcomeCreated
			outcome.InvitationID = b.ID.String()
			result.Created++

			if err := s.queue(ctx, tx, d, events.DriveEvent{
				EventType: events.EventCollegeInvited,
				CollegeID: id.String(),
				Status:    string(StatusPending),
				ActorID:   p.UserID.String(),
			}); err != nil {
				return InviteResult{}, err
			}
		}
		result.Results = append(result.Results, outcome)
	}

	if err := tx.Commit(); err != nil {
		return InviteResult{}, err
	}
	s.logger.Info("colleges invited",
		zap.String("drive_id", d.ID.String()),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *service) Respond(ctx context.Context, p domain.Principal, invitationID uuid.UUID, req RespondRequest) (BindingResponse, error) {
	if invitationID == uuid.Nil {
		return BindingResponse{}, invitationerrors.ErrInvalidInvitationID
	}
	if !p.IsCollege() {
		return BindingResponse{}, invitationerrors.ErrNotInvitedCollege
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BindingResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)
	dtx := s.drives.WithTx(tx)

	b, err := qtx.GetByID(ctx, invitationID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BindingResponse{}, invitationerrors.ErrInvitationNotFound
		}
		return BindingResponse{}, err
	}
	if err := CanRespond(*b, p); err != nil {
		return BindingResponse{}, err
	}

	d, err := loadDrive(ctx, dtx, b.DriveID, false)
	if err != nil {
		return BindingResponse{}, err
	}
	if d.Status == drive.StatusClosed {
		return BindingResponse{}, invitationerrors.ErrDriveClosed
	}

	now := s.now().UTC()
	b.RespondedAt = &now
	b.UpdatedAt = now
	switch req.Decision {
	case "ACCEPT":
		b.InvitationStatus = StatusAccepted
		if err := s.seedCollegePipeline(ctx, dtx, b, now); err != nil {
			return BindingResponse{}, err
		}
	case "REJECT":
		b.InvitationStatus = StatusRejected
		b.RejectionReason = strings.TrimSpace(req.Reason)
	default:
		return BindingResponse{}, apperror.InvalidField("decision")
	}

	if err := qtx.SaveResponse(ctx, b); err != nil {
		s.logger.Error("save invitation response failed", zap.String("invitation_id", invitationID.String()), zap.Error(err))
		return BindingResponse{}, err
	}
	if err := s.queue(ctx, tx, d, events.DriveEvent{
		EventType: events.EventInvitationResponded,
		CollegeID: b.CollegeID.String(),
		Status:    string(b.InvitationStatus),
		ActorID:   p.UserID.String(),
	}); err != nil {
		return BindingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BindingResponse{}, err
	}

	s.logger.Info("invitation answered",
		zap.String("invitation_id", invitationID.String()),
		zap.String("status", string(b.InvitationStatus)),
	)
	return toResponse(BindingView{Binding: *b, DriveTitle: d.Title, DriveCode: d.Code, DriveStatus: string(d.Status), CompanyID: d.CompanyID}), nil
}

// seedCollegePipeline membuat pipeline scope college dan menyetel current_stage
// binding. Binding ADMIN memakai pipeline drive, tidak ada yang di-seed.
func (s *service) seedCollegePipeline(ctx context.Context, dtx drive.Repository, b *Binding, now time.Time) error {
	if b.InvitationStatus != StatusAccepted || b.PipelineScope() == uuid.Nil {
		return nil
	}
	if err := dtx.SeedStages(ctx, b.DriveID, b.CollegeID, now); err != nil {
		s.logger.Error("seed college pipeline failed",
			zap.String("drive_id", b.DriveID.String()),
			zap.String("college_id", b.CollegeID.String()),
			zap.Error(err),
		)
		return err
	}
	if b.CurrentStage == nil {
		first := string(drive.StageApplications)
		b.CurrentStage = &first
	}
	return nil
}

func (s *service) UpdateBinding(ctx context.Context, p domain.Principal, driveID, collegeID uuid.UUID, req UpdateBindingRequest) (BindingResponse, error) {
	if req.ManagedBy == nil && req.InvitationStatus == nil {
		return BindingResponse{}, invitationerrors.ErrNothingToUpdate
	}
	if req.InvitationStatus != nil && !p.IsAdmin() {
		return BindingResponse{}, invitationerrors.ErrStatusOverrideAdminOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BindingResponse{}, err
	}
	defer tx.Rollback()
	qtx := s.repo.WithTx(tx)
	dtx := s.drives.WithTx(tx)

	d, err := loadDrive(ctx, dtx, driveID, false)
	if err != nil {
		return BindingResponse{}, err
	}
	if !p.IsAdmin() && !p.OwnsCompany(d.CompanyID) {
		if p.IsCompany() {
			return BindingResponse{}, driveerrors.ErrNotDriveOwner
		}
		return BindingResponse{}, apperror.ErrForbidden
	}

	b, err := qtx.Get(ctx, driveID, collegeID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BindingResponse{}, invitationerrors.ErrBindingNotFound
		}
		return BindingResponse{}, err
	}

	now := s.now().UTC()
	if req.ManagedBy != nil {
		b.ManagedBy = ManagedBy(*req.ManagedBy)
	}
	if req.InvitationStatus != nil {
		status := InvitationStatus(*req.InvitationStatus)
		if status != b.InvitationStatus {
			b.InvitationStatus = status
			if status == StatusPending {
				b.RespondedAt = nil
			} else {
				b.RespondedAt = &now
			}
		}
	}
	// ACCEPTED + COLLEGE, baik karena override status maupun pindah delegasi
	if err := s.seedCollegePipeline(ctx, dtx, b, now); err != nil {
		return BindingResponse{}, err
	}
	b.UpdatedAt = now

	if err := qtx.SaveBinding(ctx, b); err != nil {
		return BindingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BindingResponse{}, err
	}

	s.logger.Info("binding updated",
		zap.String("drive_id", driveID.String()),
		zap.String("college_id", collegeID.String()),
		zap.String("managed_by", string(b.ManagedBy)),
		zap.String("invitation_status", string(b.InvitationStatus)),
	)
	return toResponse(BindingView{Binding: *b, DriveTitle: d.Title, DriveCode: d.Code, DriveStatus: string(d.Status), CompanyID: d.CompanyID}), nil
}

func (s *service) ListForDrive(ctx context.Context, p domain.Principal, driveID uuid.UUID) ([]BindingResponse, error) {
	d, err := loadDrive(ctx, s.drives, driveID, false)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.OwnsCompany(d.CompanyID) {
		return nil, driveerrors.ErrNotDriveOwner
	}

	rows, err := s.repo.ListForDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}
	out := make([]BindingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

func (s *service) ListForCollege(ctx context.Context, p domain.Principal, filter CollegeFilter) ([]BindingResponse, int64, error) {
	if !p.IsCollege() || p.OrgID == uuid.Nil {
		return nil, 0, apperror.ErrForbidden
	}
	rows, total, err := s.repo.ListForCollege(ctx, p.OrgID, filter)
	if err != nil {
		s.logger.Error("list invitations failed", zap.String("college_id", p.OrgID.String()), zap.Error(err))
		return nil, 0, err
	}
	out := make([]BindingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, total, nil
}

func (s *service) queue(ctx context.Context, tx *sql.Tx, d *drive.Drive, ev events.DriveEvent) error {
	ev.DriveID = d.ID.String()
	ev.DriveTitle = d.Title
	ev.CompanyID = d.CompanyID.String()
	if err := events.QueueDriveEvent(ctx, s.outbox, tx, "drive_college", d.ID.String()+":"+ev.CollegeID, ev); err != nil {
		s.logger.Error("invitation event outbox persist failed",
			zap.String("drive_id", d.ID.String()),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func toResponse(v BindingView) BindingResponse {
	resp := BindingResponse{
		ID:               v.ID.String(),
		DriveID:          v.DriveID.String(),
		DriveTitle:       v.DriveTitle,
		DriveCode:        v.DriveCode,
		DriveStatus:      v.DriveStatus,
		CompanyName:      v.CompanyName,
		CollegeID:        v.CollegeID.String(),
		CollegeName:      v.CollegeName,
		InvitationStatus: string(v.InvitationStatus),
		ManagedBy:        string(v.ManagedBy),
		RejectionReason:  v.RejectionReason,
		InvitedAt:        v.InvitedAt,
		RespondedAt:      v.RespondedAt,
	}
	if v.CompanyID != uuid.Nil {
		resp.CompanyID = v.CompanyID.String()
	}
	if v.CurrentStage != nil {
		resp.CurrentStage = *v.CurrentStage
	}
	return resp
}
