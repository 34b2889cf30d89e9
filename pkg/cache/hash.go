package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a cache key of the form "prefix:<sha256>", where the digest
// covers the JSON encoding of every component. Components that marshal
// identically share a key, which is exactly the hit condition wanted for
// deterministic artifacts.
func hashKey(prefix string, components ...any) string {
	payload, _ := json.Marshal(components)
	return prefix + ":" + Hash(payload)
}

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
