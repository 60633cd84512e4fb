// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
	apperrors "github.com/calmcp/credvault/internal/errors"
)

var (
	// hexKeyRegex matches a 64-character hexadecimal string (a 256-bit key).
	hexKeyRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

	// providerRegex matches OAuth provider identifiers (e.g., "google", "azure-ad").
	providerRegex = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// HexMasterKey validates that a string is a well-formed hex-encoded 256-bit key.
// This checks format only; the weak-key policy lives in the crypto domain.
var HexMasterKey = validation.NewStringRuleWithError(
	func(s string) bool {
		return hexKeyRegex.MatchString(s)
	},
	validation.NewError(
		"validation_hex_master_key",
		"must be a 64-character hexadecimal string",
	),
)

// Provider validates an OAuth provider identifier.
var Provider = validation.NewStringRuleWithError(
	func(s string) bool {
		return providerRegex.MatchString(s)
	},
	validation.NewError(
		"validation_provider",
		"must be a lowercase identifier such as 'google' or 'azure-ad'",
	),
)

// EncryptionAlgorithm validates an encryption algorithm name.
var EncryptionAlgorithm = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_algorithm", "algorithm must be a string")
	}
	if _, err := cryptoDomain.ParseAlgorithm(s); err != nil {
		return validation.NewError(
			"validation_algorithm",
			"must be one of: aes-gcm, chacha20-poly1305",
		)
	}
	return nil
})
