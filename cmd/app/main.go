// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/calmcp/credvault/cmd/app/commands"
	cryptoService "github.com/calmcp/credvault/internal/crypto/service"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "credvault",
		Usage:   "Encrypted OAuth credential storage service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP API and metrics servers",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-key",
				Usage: "Generate a new 256-bit master encryption key",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kms-provider",
						Value: "",
						Usage: "KMS provider to wrap the key with (gcpkms, awskms, azurekeyvault, hashivault, localsecrets)",
					},
					&cli.StringFlag{
						Name:  "kms-key-uri",
						Value: "",
						Usage: "URI of the KMS wrapping key (e.g., base64key://... for localsecrets)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateKey(
						ctx,
						cryptoService.NewKMSService(),
						cmd.String("kms-provider"),
						cmd.String("kms-key-uri"),
						os.Stdout,
					)
				},
			},
			{
				Name:  "check-key",
				Usage: "Validate a master key against an environment's key policy",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "Hex-encoded candidate master key",
					},
					&cli.StringFlag{
						Name:    "environment",
						Aliases: []string{"e"},
						Value:   "production",
						Usage:   "Environment whose key policy applies (development, test, production)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCheckKey(cmd.String("key"), cmd.String("environment"), os.Stdout)
				},
			},
			{
				Name:  "hash-api-key",
				Usage: "Generate or hash an API key for client authentication",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "key",
						Value: "",
						Usage: "Plain API key to hash (omit to generate a new key)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashAPIKey(cmd.String("key"), os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
