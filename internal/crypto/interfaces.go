// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the payload codec of the sync engine: deterministic
// content hashing and keyed encryption of snapshot payloads before they leave
// the client.
//
// Two codecs are provided. [NewAEADCodec] derives a key with Argon2id and
// seals payloads with AES-256-GCM; it is the default. [NewLegacyCodec] is the
// repeating-key XOR + base64 scheme older browser clients use. It is
// obfuscation, not encryption, and exists so their uploads stay readable.
// [Open] picks the right one by looking at the payload.
package crypto

import "encoding/json"

// Codec encrypts and decrypts snapshot payloads.
//
// With an empty key both directions pass the data through untouched:
// Encrypt returns the canonical JSON of v and Decrypt returns payload as is.
type Codec interface {
	// Encrypt serializes v to canonical JSON and seals it with key.
	Encrypt(v any, key string) (string, error)

	// Decrypt opens payload with key and returns the JSON it contained.
	// On failure it returns the original payload bytes together with an
	// error wrapping [ErrDecodeFailure], so callers always have something to
	// fall back to.
	Decrypt(payload, key string) (json.RawMessage, error)

	// Scheme names the codec ("aead" or "legacy").
	Scheme() string
}
