package companyerrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrCompanyNotApproved = apperror.New(
		apperror.CodeForbidden,
		"Company is not approved yet",
		http.StatusForbidden,
	)
)
