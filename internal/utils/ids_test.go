package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		id := g.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGeneratePass_LengthAndAlphabet(t *testing.T) {
	pass, err := GeneratePass(DefaultPassLength)
	if err != nil {
		t.Fatalf("GeneratePass error: %v", err)
	}
	if len(pass) != DefaultPassLength {
		t.Fatalf("len = %d, want %d", len(pass), DefaultPassLength)
	}
	for _, r := range pass {
		if !strings.ContainsRune(PassAlphabet, r) {
			t.Fatalf("unexpected character %q in %q", r, pass)
		}
	}
}

func TestGeneratePass_Random(t *testing.T) {
	a, _ := GeneratePass(32)
	b, _ := GeneratePass(32)
	if a == b {
		t.Fatal("expected two generated passes to differ")
	}
}

func TestGeneratePass_InvalidLength(t *testing.T) {
	if _, err := GeneratePass(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}
