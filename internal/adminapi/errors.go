package adminapi

import (
	"errors"
	"fmt"
)

// ErrInvalidAPIKey indicates the admin backend rejected the API key
var ErrInvalidAPIKey = errors.New("invalid admin backend API key")

// ErrUnreachable indicates the admin backend could not be reached
var ErrUnreachable = errors.New("admin backend unreachable")

// ServerError represents a 5xx error from the admin backend
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("admin backend server error: HTTP %d", e.StatusCode)
}
