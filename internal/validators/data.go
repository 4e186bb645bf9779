// Package validators checks the sync payloads clients upload before they
// reach the data service.
package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-sync/models"
)

// Validator checks a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

// Field names accepted by [DataValidator].
const (
	FieldPass   = "pass"
	FieldDomain = "domain"
	FieldData   = "data"
	FieldSize   = "size"
)

// maxDomainLength is the longest host name DNS allows.
const maxDomainLength = 253

// DataValidator checks the entries clients upload or address.
type DataValidator struct {
	maxDataSize int64
}

// NewDataValidator builds a validator rejecting payloads above maxDataSize
// bytes. A non-positive limit disables the size check.
func NewDataValidator(maxDataSize int64) Validator {
	return &DataValidator{maxDataSize: maxDataSize}
}

// Validate accepts models.DataEntry or *models.DataEntry.
//
// Without fields it checks pass, domain, data and size.
func (v *DataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DataEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.DataEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DataValidator) validateEntry(_ context.Context, entry models.DataEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPass, FieldDomain, FieldData, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldPass:
			if strings.TrimSpace(entry.Pass.String()) == "" {
				return ErrMissingPass
			}
		case FieldDomain:
			domain := strings.TrimSpace(entry.Domain)
			if domain == "" {
				return ErrMissingDomain
			}
			if len(domain) > maxDomainLength || strings.ContainsAny(domain, " /?#\\") {
				return fmt.Errorf("%w: %q", ErrInvalidDomain, entry.Domain)
			}
		case FieldData:
			if entry.Data == "" {
				return ErrMissingData
			}
		case FieldSize:
			if v.maxDataSize > 0 && int64(len(entry.Data)) > v.maxDataSize {
				return fmt.Errorf("%w: max size %d bytes", ErrDataTooLarge, v.maxDataSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
