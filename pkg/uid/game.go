package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns 16 random bytes hex-encoded
func GenerateGameID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
