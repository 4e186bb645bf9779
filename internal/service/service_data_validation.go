package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/validators"
	"github.com/MKhiriev/go-pass-sync/models"
)

// DataValidationService checks request fields before they reach the wrapped
// DataService.
type DataValidationService struct {
	inner     DataService
	validator validators.Validator
}

func NewDataValidationService(maxDataSize int64) DataServiceWrapper {
	return &DataValidationService{
		validator: validators.NewDataValidator(maxDataSize),
	}
}

func (v *DataValidationService) Upload(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.DataEntry{}, fmt.Errorf("upload validation failed: %w", err)
	}
	return v.inner.Upload(ctx, entry)
}

func (v *DataValidationService) Latest(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error) {
	if err := v.validateAddress(ctx, pass, domain); err != nil {
		return models.DataEntry{}, err
	}
	return v.inner.Latest(ctx, pass, domain)
}

func (v *DataValidationService) ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error) {
	if err := v.validateAddress(ctx, pass, domain); err != nil {
		return nil, err
	}
	return v.inner.ListVersions(ctx, pass, domain, limit)
}

func (v *DataValidationService) GetVersion(ctx context.Context, pass models.Pass, domain, versionID string) (models.DataEntry, error) {
	if err := v.validateAddress(ctx, pass, domain); err != nil {
		return models.DataEntry{}, err
	}
	return v.inner.GetVersion(ctx, pass, domain, versionID)
}

func (v *DataValidationService) Delete(ctx context.Context, pass models.Pass, domain, versionID string) (int64, error) {
	if err := v.validateAddress(ctx, pass, domain); err != nil {
		return 0, err
	}
	return v.inner.Delete(ctx, pass, domain, versionID)
}

func (v *DataValidationService) PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error) {
	if err := v.validator.Validate(ctx, models.DataEntry{Pass: pass}, validators.FieldPass); err != nil {
		return models.PassStats{}, err
	}
	return v.inner.PassStats(ctx, pass)
}

func (v *DataValidationService) ServerStats(ctx context.Context) (models.ServerStats, error) {
	return v.inner.ServerStats(ctx)
}

func (v *DataValidationService) QuickAccess(ctx context.Context, pass models.Pass, domain, key string) (models.QuickAccess, error) {
	if err := v.validateAddress(ctx, pass, domain); err != nil {
		return models.QuickAccess{}, err
	}
	return v.inner.QuickAccess(ctx, pass, domain, key)
}

func (v *DataValidationService) Prune(ctx context.Context) (int64, error) {
	return v.inner.Prune(ctx)
}

func (v *DataValidationService) Wrap(wrapper DataService) DataService {
	v.inner = wrapper
	return v
}

func (v *DataValidationService) validateAddress(ctx context.Context, pass models.Pass, domain string) error {
	return v.validator.Validate(ctx, models.DataEntry{Pass: pass, Domain: domain}, validators.FieldPass, validators.FieldDomain)
}
