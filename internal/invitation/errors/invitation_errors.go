package invitationerrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

var (
	ErrInvitationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invitation not found",
		http.StatusNotFound,
	)
	ErrInvalidInvitationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invitation ID",
		http.StatusBadRequest,
	)
	ErrBindingNotFound = apperror.New(
		apperror.CodeNotFound,
		"College is not invited to this drive",
		http.StatusNotFound,
	)
	ErrNotInvitedCollege = apperror.New(
		apperror.CodeForbidden,
		"Invitation belongs to another college",
		http.StatusForbidden,
	)
	ErrCollegeNotInvited = apperror.New(
		apperror.CodeForbidden,
		"College has no invitation for this drive",
		http.StatusForbidden,
	)
	ErrManagedByAdmin = apperror.New(
		apperror.CodeForbidden,
		"Stages for this college are managed by admin",
		http.StatusForbidden,
	)
	ErrManagedByCollege = apperror.New(
		apperror.CodeForbidden,
		"Stages for this college are managed by the college",
		http.StatusForbidden,
	)
	ErrInvitationNotAccepted = apperror.New(
		apperror.CodeForbidden,
		"College has not accepted the invitation",
		http.StatusForbidden,
	)
	ErrStatusOverrideAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Only admin can override invitation status",
		http.StatusForbidden,
	)

	ErrInvitationNotPending = apperror.InvalidState("Invitation has already been answered")
	ErrDriveClosed          = apperror.InvalidState("Drive is closed")
	ErrNothingToUpdate      = apperror.Validation("Nothing to update")
)
