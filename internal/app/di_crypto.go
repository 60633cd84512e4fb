package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
	cryptoService "github.com/calmcp/credvault/internal/crypto/service"
)

// cryptoContainer holds the cryptographic components of the container.
type cryptoContainer struct {
	masterKey        *cryptoDomain.MasterKey
	aeadManager      cryptoService.AEADManager
	kmsService       cryptoService.KMSService
	credentialCipher cryptoService.CredentialCipher

	masterKeyInit        sync.Once
	aeadManagerInit      sync.Once
	kmsServiceInit       sync.Once
	credentialCipherInit sync.Once
}

// MasterKey returns the validated master encryption key.
// On first access the key is loaded from configuration, optionally unwrapped
// through the configured KMS provider, and validated against the
// environment-dependent key policy. Startup fails on any validation error.
func (c *Container) MasterKey() (*cryptoDomain.MasterKey, error) {
	var err error
	c.masterKeyInit.Do(func() {
		c.masterKey, err = c.initMasterKey()
		if err != nil {
			c.initErrors["masterKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKey"]; exists {
		return nil, storedErr
	}
	return c.masterKey, nil
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// CredentialCipher returns the credential cipher used to protect token material.
func (c *Container) CredentialCipher() (cryptoService.CredentialCipher, error) {
	var err error
	c.credentialCipherInit.Do(func() {
		c.credentialCipher, err = c.initCredentialCipher()
		if err != nil {
			c.initErrors["credentialCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialCipher"]; exists {
		return nil, storedErr
	}
	return c.credentialCipher, nil
}

// initMasterKey loads, optionally unwraps, and validates the master key.
func (c *Container) initMasterKey() (*cryptoDomain.MasterKey, error) {
	logger := c.Logger()

	if c.config.EncryptionKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is not set")
	}

	keyMaterial := c.config.EncryptionKey
	if c.config.KMSProvider != "" {
		unwrapped, err := c.unwrapMasterKey(context.Background())
		if err != nil {
			return nil, err
		}
		keyMaterial = unwrapped
	}

	env := cryptoDomain.ParseEnvironment(c.config.Environment)

	masterKey, err := cryptoDomain.ParseMasterKey(keyMaterial, env)
	if err != nil {
		return nil, fmt.Errorf("master key validation failed: %w", err)
	}

	logger.Info("master key loaded",
		slog.String("environment", string(env)),
		slog.Bool("kms_wrapped", c.config.KMSProvider != ""))

	return masterKey, nil
}

// unwrapMasterKey decrypts the KMS-wrapped master key ciphertext.
// The configured ENCRYPTION_KEY is expected to hold base64 KMS ciphertext.
func (c *Container) unwrapMasterKey(ctx context.Context) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(c.config.EncryptionKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode wrapped master key: %w", err)
	}

	keeper, err := c.KMSService().OpenKeeper(ctx, c.config.KMSKeyURI)
	if err != nil {
		return "", fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			c.Logger().Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to unwrap master key: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	return string(plaintext), nil
}

// initCredentialCipher builds the credential cipher from the validated master key.
func (c *Container) initCredentialCipher() (cryptoService.CredentialCipher, error) {
	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, err
	}

	alg, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption algorithm: %w", err)
	}

	return cryptoService.NewCredentialCipher(masterKey, alg, c.AEADManager())
}
