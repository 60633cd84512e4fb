package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	cryptoService "github.com/calmcp/credvault/internal/crypto/service"
	"github.com/calmcp/credvault/internal/database"
	apperrors "github.com/calmcp/credvault/internal/errors"
)

// credentialUseCase implements the CredentialUseCase interface.
type credentialUseCase struct {
	txManager      database.TxManager
	credentialRepo CredentialRepository
	cipher         cryptoService.CredentialCipher
}

// Upsert encrypts the credential's token material and stores the envelopes.
// When a credential already exists for the provider/user pair, its ID and
// CreatedAt are preserved and only the token fields are replaced.
func (c *credentialUseCase) Upsert(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) (*credentialsDomain.Credential, error) {
	accessEnvelope, err := c.cipher.Encrypt(credential.AccessToken)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt access token")
	}

	var refreshEnvelope string
	if credential.RefreshToken != "" {
		refreshEnvelope, err = c.cipher.Encrypt(credential.RefreshToken)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to encrypt refresh token")
		}
	}

	now := time.Now().UTC()
	stored := &credentialsDomain.Credential{
		ID:                   uuid.Must(uuid.NewV7()),
		Provider:             credential.Provider,
		UserID:               credential.UserID,
		AccessTokenEnvelope:  accessEnvelope,
		RefreshTokenEnvelope: refreshEnvelope,
		TokenType:            credential.TokenType,
		Scope:                credential.Scope,
		ExpiresAt:            credential.ExpiresAt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := c.credentialRepo.GetByProviderAndUserID(txCtx, credential.Provider, credential.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil {
			stored.ID = existing.ID
			stored.CreatedAt = existing.CreatedAt
		}

		return c.credentialRepo.Upsert(txCtx, stored)
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Get retrieves the stored credential and decrypts its token envelopes.
func (c *credentialUseCase) Get(
	ctx context.Context,
	provider, userID string,
) (*credentialsDomain.Credential, error) {
	credential, err := c.credentialRepo.GetByProviderAndUserID(ctx, provider, userID)
	if err != nil {
		return nil, err
	}

	credential.AccessToken, err = c.cipher.Decrypt(credential.AccessTokenEnvelope)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt access token")
	}

	if credential.RefreshTokenEnvelope != "" {
		credential.RefreshToken, err = c.cipher.Decrypt(credential.RefreshTokenEnvelope)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to decrypt refresh token")
		}
	}

	return credential, nil
}

// Delete removes the stored credential for a provider/user pair.
func (c *credentialUseCase) Delete(ctx context.Context, provider, userID string) error {
	return c.credentialRepo.Delete(ctx, provider, userID)
}

// NewCredentialUseCase creates a new CredentialUseCase with the given dependencies.
func NewCredentialUseCase(
	txManager database.TxManager,
	credentialRepo CredentialRepository,
	cipher cryptoService.CredentialCipher,
) CredentialUseCase {
	return &credentialUseCase{
		txManager:      txManager,
		credentialRepo: credentialRepo,
		cipher:         cipher,
	}
}
