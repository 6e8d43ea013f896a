// Package utils holds small generically-useful helpers shared across the
// module that don't belong to any one domain package.
package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateUUID returns a random v4-shaped UUID string.
func GenerateUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// GenerateShortID returns a random 8-hex-character identifier, short enough
// to use as a human-facing review ticket ID.
func GenerateShortID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
