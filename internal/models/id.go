package models

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a 24-character lowercase hexadecimal identifier. Every
// record id in the API uses this format.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand reads never fail on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b)
}
