package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnreachable wraps network failures and timeouts.
	ErrUnreachable = errors.New("server unreachable")
	// ErrRejected is matched by every non-2xx answer.
	ErrRejected = errors.New("server rejected request")
	// ErrInvalidServerURL is returned when the configured address cannot be used.
	ErrInvalidServerURL = errors.New("invalid server url")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrUpgradeRequired     = errors.New("upgrade required")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusUpgradeRequired:       ErrUpgradeRequired,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// HTTPError is a non-2xx answer of the server.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Is reports whether target is [ErrRejected] or the sentinel of e.Status.
func (e *HTTPError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}
	sentinel, ok := statusSentinels[e.Status]
	return ok && target == sentinel
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an
// [*HTTPError].
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
