package check

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Fingerprint derives a stable cache key from a property map: the keys are
// sorted, each key/value pair is length-prefixed to rule out concatenation
// collisions, and the canonical byte stream is hashed with SHA-256.
// Maps with equal contents always produce equal fingerprints.
func Fingerprint(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	h := sha256.New()
	var lenBuf [8]byte

	writeChunk := func(s string) {
		n := len(s)
		for i := 0; i < 8; i++ {
			lenBuf[i] = byte(n >> (8 * i))
		}

		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}

	for _, k := range keys {
		writeChunk(k)
		writeChunk(props[k])
	}

	return hex.EncodeToString(h.Sum(nil))
}
