package invitation

import (
	"context"
	"errors"

	"freshbit/internal/domain"
	"freshbit/internal/drive"
	invitationerrors "freshbit/internal/invitation/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ drive.StageAuthorizer = (*StageAuthorizer)(nil)

// StageAuthorizer menerapkan CanAdvanceCollegeStage untuk drive.Service.
type StageAuthorizer struct {
	repo Repository
}

func NewStageAuthorizer(repo Repository) *StageAuthorizer {
	return &StageAuthorizer{repo: repo}
}

func (a *StageAuthorizer) binding(ctx context.Context, driveID, collegeID uuid.UUID) (*Binding, error) {
	b, err := a.repo.Get(ctx, driveID, collegeID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invitationerrors.ErrCollegeNotInvited
		}
		return nil, err
	}
	return b, nil
}

// AuthorizeStageAdvance mengembalikan scope yang dimajukan: college untuk
// binding COLLEGE, drive untuk binding ADMIN.
func (a *StageAuthorizer) AuthorizeStageAdvance(ctx context.Context, d *drive.Drive, collegeID uuid.UUID, p domain.Principal) (uuid.UUID, error) {
	b, err := a.binding(ctx, d.ID, collegeID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := CanAdvanceCollegeStage(*b, d.CompanyID, p); err != nil {
		return uuid.Nil, err
	}
	return b.PipelineScope(), nil
}

func (a *StageAuthorizer) PipelineScope(ctx context.Context, driveID, collegeID uuid.UUID) (uuid.UUID, error) {
	b, err := a.binding(ctx, driveID, collegeID)
	if err != nil {
		return uuid.Nil, err
	}
	return b.PipelineScope(), nil
}

// ScopeStages baris stage yang mengatur binding b. b nil atau binding ADMIN
// memakai pipeline drive, begitu juga binding COLLEGE yang belum di-seed.
func ScopeStages(ctx context.Context, drives drive.Repository, driveID uuid.UUID, b *Binding) ([]drive.Stage, uuid.UUID, error) {
	if b != nil {
		if scope := b.PipelineScope(); scope != uuid.Nil {
			stages, err := drives.ListStages(ctx, driveID, scope)
			if err != nil {
				return nil, uuid.Nil, err
			}
			if len(stages) > 0 {
				return stages, scope, nil
			}
		}
	}
	stages, err := drives.ListStages(ctx, driveID, uuid.Nil)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return stages, uuid.Nil, nil
}
