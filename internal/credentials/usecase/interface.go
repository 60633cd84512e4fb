// Package usecase implements business logic orchestration for stored OAuth
// credentials. It coordinates the credential cipher and the repository so that
// token material is encrypted before persistence and decrypted on retrieval.
package usecase

import (
	"context"

	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
)

// CredentialRepository defines the interface for credential persistence operations.
type CredentialRepository interface {
	Upsert(ctx context.Context, credential *credentialsDomain.Credential) error
	GetByProviderAndUserID(ctx context.Context, provider, userID string) (*credentialsDomain.Credential, error)
	Delete(ctx context.Context, provider, userID string) error
}

// CredentialUseCase defines the interface for credential management business logic.
type CredentialUseCase interface {
	// Upsert encrypts the token material on the given credential and stores it,
	// replacing any credential previously stored for the same provider/user pair.
	Upsert(ctx context.Context, credential *credentialsDomain.Credential) (*credentialsDomain.Credential, error)
	// Get retrieves and decrypts the credential for a provider/user pair.
	//
	// The returned Credential carries plaintext tokens in the AccessToken and
	// RefreshToken fields. Callers must not log or serialize them.
	Get(ctx context.Context, provider, userID string) (*credentialsDomain.Credential, error)
	Delete(ctx context.Context, provider, userID string) error
}
