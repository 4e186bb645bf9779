package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDecodeFailure is returned when a payload is malformed or cannot be
	// opened with the given key.
	ErrDecodeFailure = errors.New("payload decode failure")

	// ErrUnknownScheme is returned by [NewCodec] for an unsupported scheme.
	ErrUnknownScheme = errors.New("unknown codec scheme")
)

// Canonical returns the canonical JSON serialization of v. encoding/json
// writes map keys sorted and struct fields in declaration order, which makes
// the output stable for equal values.
func Canonical(v any) ([]byte, error) {
	if raw, ok := v.(json.RawMessage); ok {
		return compactRaw(raw)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	return data, nil
}

// compactRaw re-encodes raw JSON through a generic value so key order and
// whitespace are normalized too.
func compactRaw(raw json.RawMessage) ([]byte, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	return json.Marshal(generic)
}

// Hash returns the lowercase hex SHA-256 of the canonical JSON of v. It is
// meant for equality checks only.
func Hash(v any) (string, error) {
	data, err := Canonical(v)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
