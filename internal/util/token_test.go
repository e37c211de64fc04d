package util

import (
	"strings"
	"testing"
)

func TestNewToken(t *testing.T) {
	token, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken error = %v", err)
	}

	// 24 bytes -> 32 base64 chars once padding is stripped
	if len(token) != 32 {
		t.Errorf("token length = %d, want 32", len(token))
	}
	if strings.ContainsAny(token, "=+/") {
		t.Errorf("token %q contains non-URL-safe characters", token)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken %d error = %v", i, err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token: %q", tok)
		}
		seen[tok] = true
	}
}
