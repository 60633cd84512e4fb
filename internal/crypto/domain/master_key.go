package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MasterKey holds the single symmetric key used to encrypt and decrypt all
// credentials handled by the service.
//
// The key is parsed once at service construction, held for the lifetime of
// the process, and never logged or serialized. Rotating the key in place is
// not supported; replace the whole service instance instead.
//
// Security considerations:
//   - Master keys must be 32 bytes (256 bits) for AES-256 and ChaCha20-Poly1305
//   - Keys should be generated using cryptographically secure random generators
//   - In production the key must not match the weak-key denylist
type MasterKey struct {
	// Key is the raw 32-byte master key material.
	Key []byte
}

// ParseMasterKey validates a candidate master key against the policy for the
// given deployment environment and returns a usable MasterKey.
//
// The candidate is normalized first: surrounding whitespace is trimmed and
// the hex digits are lowercased, so policy matching is case-insensitive.
// The normalized value must be exactly 64 hex characters decoding to
// 32 bytes; any format violation is fatal in every environment since a
// malformed key can never be used safely.
//
// When env is Production the decoded key bytes are additionally matched
// against the weak-key denylist (all-zero, constant-byte, sequential digits,
// known placeholders such as repeated "deadbeef"). A match fails construction
// with ErrWeakKey. Development and test skip the denylist entirely.
//
// Failing fast at startup turns a misconfiguration into an immediate, loud
// failure instead of a silent data-at-rest vulnerability discovered later.
func ParseMasterKey(candidate string, env Environment) (*MasterKey, error) {
	normalized := strings.ToLower(strings.TrimSpace(candidate))

	if len(normalized) != MasterKeyHexLength {
		return nil, fmt.Errorf(
			"%w: must be %d hex characters, got %d",
			ErrInvalidKeyFormat,
			MasterKeyHexLength,
			len(normalized),
		)
	}

	key, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid hex string", ErrInvalidKeyFormat)
	}
	if len(key) != MasterKeySize {
		Zero(key)
		return nil, fmt.Errorf(
			"%w: master key must be %d bytes, got %d",
			ErrInvalidKeySize,
			MasterKeySize,
			len(key),
		)
	}

	if env.IsProduction() {
		if pattern, matched := MatchWeakKey(key); matched {
			Zero(key)
			return nil, fmt.Errorf("%w (matched %s pattern)", ErrWeakKey, pattern)
		}
	}

	return &MasterKey{Key: key}, nil
}

// Close securely clears the key material from memory.
//
// Call this when the master key is no longer needed (e.g., during
// application shutdown) to ensure sensitive material is removed.
func (m *MasterKey) Close() {
	Zero(m.Key)
	m.Key = nil
}
