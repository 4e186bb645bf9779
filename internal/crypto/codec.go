package crypto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Supported codec schemes.
const (
	SchemeAEAD   = "aead"
	SchemeLegacy = "legacy"
)

// NewCodec builds the codec for scheme. An empty scheme means [SchemeAEAD].
func NewCodec(scheme string, params ArgonParams) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeAEAD:
		return NewAEADCodec(params), nil
	case SchemeLegacy:
		return NewLegacyCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Open decrypts payload with whichever codec produced it, judging by the
// envelope prefix. Payloads that are already plain JSON are returned as is,
// so data uploaded with encryption disabled opens too.
func Open(payload, key string, params ArgonParams) (json.RawMessage, error) {
	if strings.HasPrefix(payload, EnvelopePrefix) {
		return NewAEADCodec(params).Decrypt(payload, key)
	}

	if json.Valid([]byte(payload)) {
		trimmed := strings.TrimSpace(payload)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return json.RawMessage(payload), nil
		}
	}

	return NewLegacyCodec().Decrypt(payload, key)
}
