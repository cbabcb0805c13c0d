package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenKey returns a fresh opaque secret: 16 random bytes encoded as
// URL-safe base64 without padding.
func GenKey() string {
	b := make([]byte, 16)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
