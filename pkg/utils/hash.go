package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashContact returns a short, stable fingerprint of an email address so logs
// can correlate submissions without carrying the address itself.
func HashContact(contact string) string {
	normalized := strings.ToLower(strings.TrimSpace(contact))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
