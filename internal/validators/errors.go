package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingPass   = errors.New("missing pass")
	ErrMissingDomain = errors.New("missing domain parameter")
	ErrInvalidDomain = errors.New("invalid domain parameter")
	ErrMissingData   = errors.New("missing data field")
	ErrDataTooLarge  = errors.New("data too large")
)
