package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

type legacyCodec struct{}

// NewLegacyCodec returns the XOR + base64 [Codec] of older clients.
func NewLegacyCodec() Codec {
	return legacyCodec{}
}

func (legacyCodec) Scheme() string { return SchemeLegacy }

// Encrypt implements [Codec].
func (legacyCodec) Encrypt(v any, key string) (string, error) {
	plaintext, err := Canonical(v)
	if err != nil {
		return "", err
	}
	if key == "" {
		return string(plaintext), nil
	}

	return base64.StdEncoding.EncodeToString(xorBytes(plaintext, []byte(key))), nil
}

// Decrypt implements [Codec].
func (legacyCodec) Decrypt(payload, key string) (json.RawMessage, error) {
	if key == "" {
		return json.RawMessage(payload), nil
	}

	blob, err := decodeLenientBase64(payload)
	if err != nil {
		return json.RawMessage(payload), fmt.Errorf("%w: decode base64: %w", ErrDecodeFailure, err)
	}

	plaintext := xorBytes(blob, []byte(key))
	if !json.Valid(plaintext) {
		return json.RawMessage(payload), fmt.Errorf("%w: wrong key or corrupted payload", ErrDecodeFailure)
	}
	return plaintext, nil
}

// xorBytes is its own inverse.
func xorBytes(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// decodeLenientBase64 accepts standard and URL-safe alphabets with or
// without padding, as produced by the different clients.
func decodeLenientBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	s = strings.TrimRight(s, "=")
	return base64.RawStdEncoding.DecodeString(s)
}
