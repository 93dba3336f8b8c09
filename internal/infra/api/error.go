package api

import (
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response, decoded once at the facade boundary.
type Error struct {
	Status  int
	Message string
	Reason  string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("backend returned %d: %s (%s)", e.Status, e.Message, e.Reason)
	}

	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// NotFound reports whether the backend answered 404.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}
