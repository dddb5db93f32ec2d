package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"freshbit/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.InvalidState("drive is not published"))
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeInvalidState, got.Code)
		assert.Equal(t, "drive is not published", got.Message)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})

	t.Run("details are forwarded", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrInvalidInput.WithDetails([]string{"a"}))
		assert.Equal(t, []string{"a"}, got.Details)
	})
}

func TestWithDetails_MatchesSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeForbidden, "not your drive", http.StatusForbidden)
	err := sentinel.WithDetails(map[string]string{"drive_id": "x"})

	assert.ErrorIs(t, err, sentinel)
	assert.Nil(t, sentinel.Details)
	assert.True(t, apperror.Is(err, apperror.CodeForbidden))
	assert.False(t, apperror.Is(err, apperror.CodeNotFound))
}

type sampleRequest struct {
	Name           string `json:"name" validate:"required"`
	GraduationYear int    `json:"graduation_year" validate:"min=1950"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleRequest{GraduationYear: 10})
	got := apperror.MapValidationError(err)

	assert.Equal(t, apperror.CodeValidation, got.Code)
	assert.Equal(t, "Name is required", got.Message)
	details, ok := got.Details.([]apperror.FieldError)
	assert.True(t, ok)
	assert.Len(t, details, 2)

	fallback := apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, http.StatusBadRequest, fallback.HTTPStatus)
}

type profileRequest struct {
	DisplayName string  `json:"display_name" validate:"notblank"`
	Website     *string `json:"website" validate:"omitempty,notblank"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	assert.NoError(t, apperror.Register(v))

	blank := "   "
	err := v.Struct(profileRequest{DisplayName: " \t ", Website: &blank})
	got := apperror.MapValidationError(err)

	assert.Equal(t, "Display Name is required", got.Message)
	details, ok := got.Details.([]apperror.FieldError)
	assert.True(t, ok)
	assert.Equal(t, []apperror.FieldError{
		{Field: "display_name", Rule: apperror.TagNotBlank},
		{Field: "website", Rule: apperror.TagNotBlank},
	}, details)

	assert.NoError(t, v.Struct(profileRequest{DisplayName: "Acme Corp"}))
}
