package invitation

import (
	"freshbit/internal/domain"
	driveerrors "freshbit/internal/drive/errors"
	invitationerrors "freshbit/internal/invitation/errors"
	"freshbit/internal/shared/apperror"

	"github.com/google/uuid"
)

// CanAdvanceCollegeStage aturan siapa boleh memajukan pipeline scope college.
// Cek managedBy dilakukan sebelum status undangan: COLLEGE pada binding ADMIN
// selalu Forbidden apa pun statusnya.
func CanAdvanceCollegeStage(b Binding, driveCompanyID uuid.UUID, p domain.Principal) error {
	denied, err := domain.MatchRole(p.Role, domain.RoleCases[error]{
		Admin: func() error { return nil },
		Company: func() error {
			if !p.OwnsCompany(driveCompanyID) {
				return driveerrors.ErrNotDriveOwner
			}
			if b.ManagedBy != ManagedByAdmin {
				return invitationerrors.ErrManagedByCollege
			}
			return nil
		},
		College: func() error {
			if b.ManagedBy != ManagedByCollege {
				return invitationerrors.ErrManagedByAdmin
			}
			if !p.OwnsCollege(b.CollegeID) {
				return invitationerrors.ErrNotInvitedCollege
			}
			return nil
		},
	})
	if err != nil {
		return apperror.ErrForbidden
	}
	if denied != nil {
		return denied
	}
	if b.InvitationStatus != StatusAccepted {
		return invitationerrors.ErrInvitationNotAccepted
	}
	return nil
}

// CanRespond hanya college yang diundang, hanya dari PENDING.
func CanRespond(b Binding, p domain.Principal) error {
	if !p.OwnsCollege(b.CollegeID) {
		return invitationerrors.ErrNotInvitedCollege
	}
	if b.InvitationStatus != StatusPending {
		return invitationerrors.ErrInvitationNotPending
	}
	return nil
}
