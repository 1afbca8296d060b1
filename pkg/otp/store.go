// Package otp holds one-time codes for the vendor login boundary. The
// store is injected, never a module-level singleton, and every entry
// expires after the configured TTL.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Store persists one-time codes keyed by phone number. Verify consumes
// the code on success; a second verification with the same code fails.
type Store interface {
	Put(ctx context.Context, phone, code string, ttl time.Duration) error
	Verify(ctx context.Context, phone, code string) (bool, error)
}

// GenerateCode returns a random numeric code of the given length using
// crypto/rand.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
