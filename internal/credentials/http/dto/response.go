package dto

import (
	"time"

	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
)

// CredentialResponse represents a stored credential in API responses.
// Token fields contain plaintext and are only included in GET responses.
// Must be transmitted over HTTPS in production.
type CredentialResponse struct {
	ID           string     `json:"id"`
	Provider     string     `json:"provider"`
	UserID       string     `json:"user_id"`
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	TokenType    string     `json:"token_type,omitempty"`
	Scope        string     `json:"scope,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MapCredentialToUpsertResponse converts a stored credential to an API response
// for PUT operations. Token material is excluded; only metadata is returned.
func MapCredentialToUpsertResponse(credential *credentialsDomain.Credential) CredentialResponse {
	return CredentialResponse{
		ID:        credential.ID.String(),
		Provider:  credential.Provider,
		UserID:    credential.UserID,
		TokenType: credential.TokenType,
		Scope:     credential.Scope,
		ExpiresAt: credential.ExpiresAt,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}
}

// MapCredentialToGetResponse converts a stored credential to an API response
// for GET operations. The decrypted token material is included.
func MapCredentialToGetResponse(credential *credentialsDomain.Credential) CredentialResponse {
	return CredentialResponse{
		ID:           credential.ID.String(),
		Provider:     credential.Provider,
		UserID:       credential.UserID,
		AccessToken:  credential.AccessToken,
		RefreshToken: credential.RefreshToken,
		TokenType:    credential.TokenType,
		Scope:        credential.Scope,
		ExpiresAt:    credential.ExpiresAt,
		CreatedAt:    credential.CreatedAt,
		UpdatedAt:    credential.UpdatedAt,
	}
}
