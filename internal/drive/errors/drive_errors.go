package driveerrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

var (
	ErrDriveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Drive not found",
		http.StatusNotFound,
	)
	ErrInvalidDriveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid drive ID",
		http.StatusBadRequest,
	)
	ErrNotDriveOwner = apperror.New(
		apperror.CodeForbidden,
		"Drive belongs to another company",
		http.StatusForbidden,
	)

	ErrDriveNotDraft     = apperror.InvalidState("Drive is not in DRAFT status")
	ErrDriveNotPublished = apperror.InvalidState("Drive is not PUBLISHED")
	ErrPipelineFinished  = apperror.InvalidState("FINAL stage already completed")
	ErrPipelineMissing   = apperror.InvalidState("Stage pipeline has not been started for this scope")
	ErrNoActiveStage     = apperror.InvalidState("Pipeline has no ACTIVE stage")

	ErrDriveHasApplications = apperror.Conflict("Drive has applications and cannot be deleted")
	ErrInvalidDateRange     = apperror.Validation("End date must not be before start date")
)
