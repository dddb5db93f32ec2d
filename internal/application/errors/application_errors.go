package applicationerrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application ID",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.InvalidTransition("Applications move forward one status at a time, or to REJECTED")
	ErrImmutable         = apperror.Immutable("Application is already SELECTED or REJECTED")
	ErrStageNotReached   = apperror.InvalidState("Drive pipeline has not reached the stage required for this status")
	ErrApplicationsShut  = apperror.InvalidState("Applications are accepted only while the APPLICATIONS stage is active")
	ErrStatusChanged     = apperror.Conflict("Application status changed meanwhile, reload and retry")
	ErrCollegeRequired   = apperror.RequiredField("College Id")
)
