package domain

import (
	"github.com/calmcp/credvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeyFormat indicates the master key is not a valid hex string of the
	// required length. A malformed key is rejected in every environment since it can
	// never be used safely.
	ErrInvalidKeyFormat = errors.Wrap(errors.ErrInvalidInput, "invalid master key format")

	// ErrInvalidKeySize indicates a cryptographic key is not exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrWeakKey indicates the master key matches the weak-key denylist while the
	// deployment environment is production. Example and placeholder keys may ship in
	// documentation and local setups but must never reach a real deployment.
	ErrWeakKey = errors.Wrap(
		errors.ErrInvalidInput,
		"cannot use example or weak encryption keys in production",
	)

	// ErrInvalidEnvelope indicates a ciphertext envelope is structurally invalid:
	// not valid base64 or too short to contain a nonce and authentication tag.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid ciphertext envelope")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
