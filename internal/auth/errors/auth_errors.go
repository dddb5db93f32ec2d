package autherrors

import (
	"net/http"

	"freshbit/internal/shared/apperror"
)

const CodeInvalidCredentials = "INVALID_CREDENTIALS"

var (
	ErrSessionExpired  = apperror.ErrSessionExpired
	ErrUnauthenticated = apperror.ErrUnauthorized
)

var (
	ErrInvalidCredentials = apperror.New(
		CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)
	ErrAdminSelfRegister = apperror.New(
		apperror.CodeForbidden,
		"Admin accounts cannot be self-registered",
		http.StatusForbidden,
	)
	ErrOrganizationNameRequired = apperror.New(
		apperror.CodeValidation,
		"Organization name is required",
		http.StatusBadRequest,
	)
	ErrInvalidOneTimeToken = apperror.New(
		apperror.CodeInvalidInput,
		"Link is invalid or has expired",
		http.StatusBadRequest,
	)
	ErrWrongCurrentPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
