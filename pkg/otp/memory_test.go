package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(6)
	require.NoError(t, err)
	require.Len(t, code, 6)

	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "code must be numeric, got %q", code)
	}

	_, err = GenerateCode(0)
	assert.Error(t, err)
}

func TestMemoryStoreVerify(t *testing.T) {
	store := NewMemoryStore()
	defer store.Stop()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+919876543210", "123456", time.Minute))

	ok, err := store.Verify(ctx, "+919876543210", "000000")
	require.NoError(t, err)
	assert.False(t, ok, "wrong code must not verify")

	ok, err = store.Verify(ctx, "+919876543210", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	// Single use: the code is consumed on success.
	ok, err = store.Verify(ctx, "+919876543210", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "code must be consumed after first verification")
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Stop()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+919876543210", "123456", 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	ok, err := store.Verify(ctx, "+919876543210", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "expired code must not verify")
}

func TestMemoryStoreUnknownPhone(t *testing.T) {
	store := NewMemoryStore()
	defer store.Stop()

	ok, err := store.Verify(context.Background(), "+10000000000", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}
