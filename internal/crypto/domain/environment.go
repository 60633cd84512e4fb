package domain

import "strings"

// Environment identifies the deployment environment the service runs in.
//
// The environment selects the master key validation policy: production
// enforces the weak-key denylist while development and test accept any
// well-formed key, keeping local workflows frictionless without risking
// real deployments.
//
// The environment is an explicit value passed into construction rather
// than ambient process state, so the crypto layer stays testable without
// mutating process-wide variables.
type Environment string

const (
	// Development is the local development environment. Weak-key checks are skipped.
	Development Environment = "development"

	// Test is the automated test environment. Weak-key checks are skipped.
	Test Environment = "test"

	// Production is the live environment. Weak-key checks are enforced.
	Production Environment = "production"
)

// ParseEnvironment converts an environment identifier into an Environment value.
//
// Matching is case-insensitive and ignores surrounding whitespace. The short
// forms "dev" and "prod" are accepted.
//
// A missing or unrecognized identifier resolves to Production: ambiguous
// configuration fails closed, since silently defaulting to the permissive
// policy would let placeholder keys slip into a real deployment.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development
	case "test":
		return Test
	default:
		return Production
	}
}

// IsProduction reports whether the weak-key denylist must be enforced.
func (e Environment) IsProduction() bool {
	return e == Production
}
