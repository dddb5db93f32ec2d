package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired refresh gagal, caller wajib logout paksa.
	ErrSessionExpired = errors.New("session expired")
	ErrNotLoggedIn    = errors.New("session: not logged in")
)

// APIError error terstruktur dari body respons non-2xx.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}
