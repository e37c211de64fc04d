package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// NewToken returns a fresh session token: 24 bytes (192 bits) from
// crypto/rand, URL-safe base64 with the padding stripped so it travels
// cleanly in cookies.
func NewToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
