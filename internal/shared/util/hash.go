package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the hex SHA-256 digest of data, used to correlate documents in logs.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
