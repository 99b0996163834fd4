package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Secret strengths accepted by NewSecret.
const (
	SecretBits128 = 128
	SecretBits256 = 256
)

// NewSecret returns a random channel secret with the given entropy,
// base64url-encoded without padding so it can be pasted into the channels
// document and a shell without quoting.
func NewSecret(bits int) (string, error) {
	if bits != SecretBits128 && bits != SecretBits256 {
		return "", fmt.Errorf("secret strength must be %d or %d bits, got %d", SecretBits128, SecretBits256, bits)
	}

	buf := make([]byte, bits/8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
