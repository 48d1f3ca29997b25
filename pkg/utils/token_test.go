package utils

import "testing"

func TestGenerateAccessToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := GenerateAccessToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tok) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(tok))
		}
		if seen[tok] {
			t.Fatalf("duplicate token generated: %s", tok)
		}
		seen[tok] = true
	}
}
