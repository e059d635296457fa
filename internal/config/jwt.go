// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
)

// minSecretLength guards against trivially brute-forceable shared secrets.
const minSecretLength = 32

// JWTConfig holds the shared secret used to verify tokens issued by the
// external authentication provider.
type JWTConfig struct {
	Secret string
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads AUTH_JWT_SECRET (required), the HS256 secret shared with the
// auth provider.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required but not set")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", minSecretLength)
	}

	return &JWTConfig{Secret: secret}, nil
}
