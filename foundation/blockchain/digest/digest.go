// Package digest provides the canonical hashing support for the blockchain.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ZeroHash represents a hash code of zeros.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value. The value is serialized to
// its canonical JSON form before hashing. Types passed to this function
// must declare their fields so the JSON keys are emitted in sorted order,
// which keeps the digest stable for logically equal values.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	return Sum(data)
}

// Sum returns the SHA-256 digest of the data as a fixed-length
// lowercase hex string.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
