// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain so per-status
// sentinels such as adapter.ErrNotFound still match.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	case errors.Is(err, adapter.ErrInvalidServerURL):
		return fmt.Errorf("%w: %w", ErrNoServerConfigured, err)
	case errors.Is(err, adapter.ErrUpgradeRequired):
		return fmt.Errorf("%w: %w", ErrIncompatibleServer, err)
	case errors.Is(err, adapter.ErrRejected):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	}

	return err
}
