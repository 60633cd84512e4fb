package service

import (
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
)

const (
	// envelopeNonceSize is the AEAD nonce length. Both supported algorithms
	// use a 96-bit nonce.
	envelopeNonceSize = 12

	// envelopeTagSize is the AEAD authentication tag length. Both supported
	// algorithms append a 128-bit tag to the ciphertext.
	envelopeTagSize = 16
)

// CredentialCipherService encrypts and decrypts credential secrets under the
// process master key.
//
// The envelope format is base64(nonce ‖ ciphertext ‖ tag) using standard
// base64 encoding. The format is stable for the life of any stored
// ciphertext; changing it is a breaking change that requires migrating all
// persisted envelopes.
//
// The service is constructed once at startup from an already-validated
// master key. Encrypt and Decrypt are stateless beyond the fixed key and
// safe for concurrent use without external locking.
type CredentialCipherService struct {
	aead AEAD
}

// NewCredentialCipher creates a CredentialCipherService from a validated
// master key and algorithm.
//
// The master key must have passed ParseMasterKey for the active deployment
// environment; this constructor only binds it to an AEAD instance.
func NewCredentialCipher(
	masterKey *cryptoDomain.MasterKey,
	alg cryptoDomain.Algorithm,
	aeadManager AEADManager,
) (*CredentialCipherService, error) {
	aead, err := aeadManager.CreateCipher(masterKey.Key, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential cipher: %w", err)
	}

	return &CredentialCipherService{aead: aead}, nil
}

// Encrypt encrypts a plaintext secret and returns the envelope string.
//
// Each call generates a fresh random nonce, so encrypting the same plaintext
// twice yields different envelopes. The empty string is a valid plaintext.
func (s *CredentialCipherService) Encrypt(plaintext string) (string, error) {
	ciphertext, nonce, err := s.aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", err
	}

	envelope := make([]byte, 0, len(nonce)+len(ciphertext))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt recovers the plaintext from an envelope produced by Encrypt.
//
// Returns ErrInvalidEnvelope when the envelope is not valid base64 or is too
// short to contain a nonce and authentication tag, and ErrDecryptionFailed
// when authentication fails (tampered ciphertext or wrong key). Plaintext is
// never returned unless the authentication tag verifies.
func (s *CredentialCipherService) Decrypt(envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", cryptoDomain.ErrInvalidEnvelope)
	}

	if len(raw) < envelopeNonceSize+envelopeTagSize {
		return "", fmt.Errorf(
			"%w: %d bytes is too short",
			cryptoDomain.ErrInvalidEnvelope,
			len(raw),
		)
	}

	nonce, ciphertext := raw[:envelopeNonceSize], raw[envelopeNonceSize:]
	plaintext, err := s.aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
