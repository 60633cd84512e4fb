package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	cryptoDomain "github.com/calmcp/credvault/internal/crypto/domain"
	cryptoService "github.com/calmcp/credvault/internal/crypto/service"
)

// RunCreateKey generates a cryptographically secure 256-bit master key and
// prints it as environment configuration.
//
// Without KMS parameters, the key is printed hex-encoded for direct use as
// ENCRYPTION_KEY. With kmsProvider and kmsKeyURI, the hex key is wrapped by
// the KMS first and printed as base64 ciphertext along with the KMS settings.
//
// For local development, use kmsProvider="localsecrets" with
// kmsKeyURI="base64key://<32-byte-base64-key>". Never use localsecrets in
// production.
func RunCreateKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	kmsProvider, kmsKeyURI string,
	w io.Writer,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be set together")
	}

	keyBytes := make([]byte, cryptoDomain.MasterKeySize)
	if _, err := rand.Read(keyBytes); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(keyBytes)

	keyHex := hex.EncodeToString(keyBytes)

	// A freshly generated random key must satisfy the production key policy
	masterKey, err := cryptoDomain.ParseMasterKey(keyHex, cryptoDomain.Production)
	if err != nil {
		return fmt.Errorf("generated key failed validation: %w", err)
	}
	masterKey.Close()

	if kmsProvider == "" {
		fmt.Fprintln(w, "# Master Key Configuration")
		fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "ENCRYPTION_KEY=\"%s\"\n", keyHex)
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			fmt.Fprintf(w, "# Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, []byte(keyHex))
	if err != nil {
		return fmt.Errorf("failed to wrap master key with KMS: %w", err)
	}

	fmt.Fprintln(w, "# Master Key Configuration (KMS Mode)")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	fmt.Fprintf(w, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	fmt.Fprintf(w, "ENCRYPTION_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))

	return nil
}
