package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomTokenGenerator issues opaque session tokens. Prefix lets operators tell token
// kinds apart in logs without decoding them.
type RandomTokenGenerator struct {
	Size   int
	Prefix string
}

func (g RandomTokenGenerator) NewToken() (string, error) {
	size := g.Size
	if size < 16 {
		size = 32
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: entropy read failed: %w", err)
	}
	return g.Prefix + base64.RawURLEncoding.EncodeToString(buf), nil
}
