package auth

import (
	"crypto/rand"
	"encoding/hex"
)

func randomSuffix(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand"
	}
	return hex.EncodeToString(bytes)
}
