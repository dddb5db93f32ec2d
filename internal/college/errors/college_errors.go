package collegeerrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

var (
	ErrCollegeNotFound = apperror.New(
		apperror.CodeNotFound,
		"College not found",
		http.StatusNotFound,
	)
	ErrInvalidCollegeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid college ID",
		http.StatusBadRequest,
	)
)
