package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value under key into dst. It reports false, leaving dst
// untouched, when the key was never written.
func GetJSON(ctx context.Context, s StateStore, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s StateStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
