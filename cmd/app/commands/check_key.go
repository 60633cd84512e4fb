package commands

import (
	"fmt"
	"io"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
)

// RunCheckKey validates a candidate master key against the key policy of the
// given environment and reports the result. The key itself is never printed.
//
// Exits non-zero (returns an error) when the key is rejected, so the command
// can gate deployments in CI.
func RunCheckKey(candidate, environment string, w io.Writer) error {
	env := cryptoDomain.ParseEnvironment(environment)

	fmt.Fprintf(w, "# Validating key against %s key policy\n", env)

	masterKey, err := cryptoDomain.ParseMasterKey(candidate, env)
	if err != nil {
		fmt.Fprintln(w, "REJECTED")
		return fmt.Errorf("key validation failed: %w", err)
	}
	masterKey.Close()

	fmt.Fprintln(w, "OK")
	return nil
}
