package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.False(t, IsAdminFromContext(ctx))
	assert.False(t, GetFirstLoginFromContext(ctx))

	id := uuid.New()
	ctx = SetFirstLoginContext(SetUserContext(ctx, id, "admin"), true)

	got, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.True(t, IsAdminFromContext(ctx))
	assert.True(t, GetFirstLoginFromContext(ctx))

	_, ok = GetUserIDFromContext(SetUserContext(context.Background(), uuid.Nil, "client"))
	assert.False(t, ok, "nil id is not a user")
}
