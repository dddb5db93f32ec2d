package rostererrors

import (
	"net/http"
	"strings"

	"freshbit/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
	ErrFileRequired      = apperror.RequiredField("File")
	ErrUnsupportedFile   = apperror.Validation("File must be a .csv or .xlsx roster")
	ErrFileTooLarge      = apperror.Validation("File exceeds the 5 MB upload limit")
	ErrEmptyRoster       = apperror.Validation("Roster has no student rows")
	ErrTooManyRows       = apperror.Validation("Roster exceeds 5000 rows")
	ErrUnreadableFile    = apperror.Validation("Roster file could not be read")
	ErrStudentHasApplied = apperror.Conflict("Student already has applications and cannot be deleted")
	ErrEmailTaken        = apperror.Conflict("Another student of this college already uses this email")
)

func MissingColumns(cols []string) error {
	return apperror.Validation("Roster is missing required columns: " + strings.Join(cols, ", "))
}
