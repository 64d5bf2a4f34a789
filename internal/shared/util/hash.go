package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// TextFingerprint returns a stable hex identifier for a piece of text.
func TextFingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
