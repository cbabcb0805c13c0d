package utils

import (
	"encoding/base64"
	"testing"
)

func TestGenKey(t *testing.T) {
	k := GenKey()
	b, err := base64.RawURLEncoding.DecodeString(k)
	if err != nil {
		t.Fatalf("key %q is not raw-url base64: %v", k, err)
	}
	if len(b) != 16 {
		t.Fatalf("expected 16 bytes of entropy, got %d", len(b))
	}

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		k := GenKey()
		if seen[k] {
			t.Fatalf("duplicate key after %d draws", i)
		}
		seen[k] = true
	}
}
