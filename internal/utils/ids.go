package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// PassAlphabet is the character set of generated passes.
const PassAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultPassLength is the length of passes minted by the server.
const DefaultPassLength = 50

// UUIDGenerator hands out time-ordered identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 if the clock based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GeneratePass returns a random alphanumeric string of length n read from the
// OS CSPRNG.
func GeneratePass(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid pass length %d", n)
	}

	max := big.NewInt(int64(len(PassAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate pass: %w", err)
		}
		out[i] = PassAlphabet[idx.Int64()]
	}
	return string(out), nil
}
