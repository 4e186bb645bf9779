// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// EnvelopePrefix marks payloads sealed by the AEAD codec.
const EnvelopePrefix = "ps1."

const saltSize = 16

// ArgonParams are the Argon2id tuning parameters used to derive the
// AES-256 key from the user supplied encryption key.
type ArgonParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgonParams follows the OWASP (2024) recommendation: one pass over
// 64 MiB with 4 lanes.
func DefaultArgonParams() ArgonParams {
	return ArgonParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

type aeadCodec struct {
	params ArgonParams
}

// NewAEADCodec returns a [Codec] that seals payloads with AES-256-GCM under a
// key derived by Argon2id. Zero fields of params fall back to
// [DefaultArgonParams].
func NewAEADCodec(params ArgonParams) Codec {
	def := DefaultArgonParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	return &aeadCodec{params: params}
}

func (c *aeadCodec) Scheme() string { return SchemeAEAD }

func (c *aeadCodec) deriveKey(key string, salt []byte) []byte {
	return argon2.IDKey([]byte(key), salt, c.params.Time, c.params.Memory, c.params.Threads, 32)
}

// Encrypt implements [Codec]. The output is
// "ps1." + base64url(salt ‖ nonce ‖ ciphertext) without padding.
func (c *aeadCodec) Encrypt(v any, key string) (string, error) {
	plaintext, err := Canonical(v)
	if err != nil {
		return "", err
	}
	if key == "" {
		return string(plaintext), nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(c.deriveKey(key, salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return EnvelopePrefix + base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec].
func (c *aeadCodec) Decrypt(payload, key string) (json.RawMessage, error) {
	if key == "" {
		return json.RawMessage(payload), nil
	}

	plaintext, err := c.open(payload, key)
	if err != nil {
		return json.RawMessage(payload), fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	return plaintext, nil
}

func (c *aeadCodec) open(payload, key string) (json.RawMessage, error) {
	encoded, ok := strings.CutPrefix(payload, EnvelopePrefix)
	if !ok {
		return nil, fmt.Errorf("missing %q envelope", EnvelopePrefix)
	}

	blob, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := newGCM(c.deriveKey(key, salt))
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	// a wrong key fails here on the authentication tag
	plaintext, err := gcm.Open(nil, rest[:nonceSize], rest[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	if !json.Valid(plaintext) {
		return nil, fmt.Errorf("decrypted payload is not json")
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
