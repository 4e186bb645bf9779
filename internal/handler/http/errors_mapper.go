package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrMissingDomain:           http.StatusBadRequest,
	service.ErrMissingData:             http.StatusBadRequest,
	service.ErrDataTooLarge:            http.StatusBadRequest,
	service.ErrInvalidVersionID:        http.StatusBadRequest,
	service.ErrWrongAdminPassword:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTooManyLoginAttempts:    http.StatusTooManyRequests,
	service.ErrClientNotSupported:      http.StatusUpgradeRequired,
	service.ErrPassGenerationFailed:    http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrMissingPass:   http.StatusBadRequest,
	validators.ErrInvalidDomain: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrRateLimited:                      http.StatusTooManyRequests,

	store.ErrPassNotFound:      http.StatusNotFound,
	store.ErrDataNotFound:      http.StatusNotFound,
	store.ErrPassAlreadyExists: http.StatusConflict,
	store.ErrDataNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the messages older clients match on.
var errorMessageMap = map[error]string{
	service.ErrMissingDomain: "Missing domain parameter",
	service.ErrMissingData:   "Missing data field",
	store.ErrPassNotFound:    "Invalid pass ID",
	store.ErrDataNotFound:    "No data found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError never exposes internal failures to the client.
func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
