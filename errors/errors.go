package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrSessionNotFound   = fmt.Errorf("session not found")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrUserAlreadyJoined = fmt.Errorf("user already joined")
	ErrSessionEmpty      = fmt.Errorf("session empty")
	ErrStoreUnavailable  = fmt.Errorf("store unavailable")
)

// MapToHTTPStatus converts a domain error into the status code exposed by the REST layer.
// Unknown errors are treated as store failures: nothing internal may leak to the client.
func MapToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyJoined), errors.Is(err, ErrSessionEmpty):
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
