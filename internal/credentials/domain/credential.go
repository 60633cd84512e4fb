// Package domain defines the core domain models for stored OAuth credentials.
// Token material is encrypted before it reaches the repository; plaintext token
// fields live in memory only and are never serialized or logged.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents the OAuth token pair stored for one user at one provider.
type Credential struct {
	// ID is the unique identifier for this credential row.
	ID uuid.UUID
	// Provider is the OAuth provider identifier (e.g., "google", "azure-ad").
	Provider string
	// UserID is the gateway-side identifier of the credential owner.
	UserID string
	// AccessTokenEnvelope is the encrypted access token as stored at rest.
	AccessTokenEnvelope string
	// RefreshTokenEnvelope is the encrypted refresh token as stored at rest.
	// Empty when the provider issued no refresh token.
	RefreshTokenEnvelope string
	// AccessToken holds the decrypted access token in memory only.
	AccessToken string `json:"-"`
	// RefreshToken holds the decrypted refresh token in memory only.
	RefreshToken string `json:"-"`
	// TokenType is the OAuth token type (typically "Bearer").
	TokenType string
	// Scope is the space-separated list of granted OAuth scopes.
	Scope string
	// ExpiresAt is when the access token expires (nil if the provider didn't say).
	ExpiresAt *time.Time
	// CreatedAt is the UTC timestamp when this credential was first stored.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last token refresh or update.
	UpdatedAt time.Time
}
