package commands

import (
	"fmt"
	"io"

	authService "github.com/calmcp/credvault/internal/auth/service"
)

// RunHashAPIKey generates API key configuration for client authentication.
//
// With an empty plainKey, a new random key is generated and both the plain key
// and its Argon2id hash are printed. With a plainKey supplied, only the hash
// of that key is printed. The server stores the hash (API_KEY_HASH); clients
// present the plain key as a Bearer token.
func RunHashAPIKey(plainKey string, w io.Writer) error {
	apiKeyService := authService.NewAPIKeyService()

	if plainKey == "" {
		generated, hashedKey, err := apiKeyService.GenerateKey()
		if err != nil {
			return fmt.Errorf("failed to generate api key: %w", err)
		}

		fmt.Fprintln(w, "# API Key Configuration")
		fmt.Fprintln(w, "# Give the plain key to the client; configure only the hash on the server")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "# Plain API key (store securely, shown only once):\n%s\n\n", generated)
		fmt.Fprintf(w, "API_KEY_HASH=\"%s\"\n", hashedKey)
		return nil
	}

	hashedKey, err := apiKeyService.HashKey(plainKey)
	if err != nil {
		return fmt.Errorf("failed to hash api key: %w", err)
	}

	fmt.Fprintf(w, "API_KEY_HASH=\"%s\"\n", hashedKey)
	return nil
}
