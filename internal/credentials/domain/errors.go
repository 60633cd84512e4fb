package domain

import (
	"github.com/calmcp/credvault/internal/errors"
)

// Credential-specific error definitions.
var (
	// ErrCredentialNotFound indicates no credential is stored for the
	// provider/user pair.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")
)
