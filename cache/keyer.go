package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Keyer generates deterministic cache keys from the canonical string fields
// of a query.
//
// Contract:
//   - Determinism: the same fields in the same order must produce the same key.
//   - Distinctness: differing field sequences must not collide through
//     concatenation ambiguity.
//   - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	Key(fields ...string) string
}

// DefaultKeyer generates SHA-256 based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key derives a key of the form count:<hash>, where hash is the first 16 hex
// characters of SHA-256 over the fields. Each field is terminated with a NUL
// byte so that ("ab", "c") and ("a", "bc") hash differently.
func (k *DefaultKeyer) Key(fields ...string) string {
	h := sha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return "count:" + hex.EncodeToString(sum[:8])
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
