package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// RefreshTokenBytes is the entropy of a raw refresh token.
const RefreshTokenBytes = 32

// HashRefreshToken returns the hex SHA-256 of a raw refresh token. Only this hash is stored.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash reports whether the raw token matches the stored hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(storedHash)) == 1
}
