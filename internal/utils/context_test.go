package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	userID, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestUserIDContext_ForeignKeyIgnored(t *testing.T) {
	//nolint:staticcheck // a plain string key must not collide with the typed one
	ctx := context.WithValue(context.Background(), "userID", int64(7))

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
