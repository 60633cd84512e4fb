// Package dto provides data transfer objects for credential HTTP request and
// response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
)

// UpsertCredentialRequest contains the token material to store for a
// provider/user pair. Provider and user ID come from the URL, not the body.
type UpsertCredentialRequest struct {
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	TokenType    string     `json:"token_type"`
	Scope        string     `json:"scope"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// Validate checks if the upsert credential request is valid.
func (r *UpsertCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AccessToken,
			validation.Required,
			validation.Length(1, 0),
		),
		validation.Field(&r.TokenType,
			validation.In("", "Bearer", "bearer"),
		),
	)
}
