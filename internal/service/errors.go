package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/validators"
)

// client side
var (
	ErrServerUnreachable     = errors.New("server unreachable")
	ErrServerRejected        = errors.New("server rejected request")
	ErrNoServerConfigured    = errors.New("no server configured")
	ErrSyncDisabledForDomain = errors.New("sync disabled for domain")
	ErrDecodeFailure         = crypto.ErrDecodeFailure
	ErrHostCollaborator      = errors.New("host collaborator failed")
	ErrEngineNotInitialized  = errors.New("engine not initialized")
	ErrIncompatibleServer    = errors.New("incompatible server version")
	ErrVersionNotFound       = errors.New("version not found")
)

// server side
var (
	ErrMissingDomain           = validators.ErrMissingDomain
	ErrMissingData             = validators.ErrMissingData
	ErrDataTooLarge            = validators.ErrDataTooLarge
	ErrInvalidVersionID        = errors.New("invalid version id")
	ErrPassGenerationFailed    = errors.New("pass generation failed")
	ErrWrongAdminPassword      = errors.New("wrong admin password")
	ErrTooManyLoginAttempts    = errors.New("too many failed login attempts")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrInvalidClientRange      = errors.New("invalid supported clients range")
	ErrClientNotSupported      = errors.New("client protocol is not supported")
)
