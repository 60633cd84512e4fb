// Package service provides the cryptographic services behind credential encryption.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) and the envelope codec
// used to protect OAuth token material at rest.
package service

import (
	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// CredentialCipher defines the string-level encrypt/decrypt contract exposed to
// the credential persistence layer. Implementations are stateless beyond the
// fixed master key and safe for concurrent use.
type CredentialCipher interface {
	// Encrypt encrypts a plaintext secret and returns an opaque envelope string.
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers the plaintext from an envelope produced by Encrypt.
	Decrypt(envelope string) (string, error)
}
