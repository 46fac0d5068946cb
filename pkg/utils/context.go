package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey     contextKey = "user_id"
	roleKey       contextKey = "role"
	firstLoginKey contextKey = "first_login"
)

// GetUserIDFromContext returns the id the auth middleware stored.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok && role != ""
}

// IsAdminFromContext true kalau role di context adalah admin
func IsAdminFromContext(ctx context.Context) bool {
	role, _ := GetRoleFromContext(ctx)
	return role == "admin"
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetFirstLoginFromContext reports whether the caller still has to replace
// the temporary password.
func GetFirstLoginFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(firstLoginKey).(bool)
	return v
}

func SetFirstLoginContext(ctx context.Context, firstLogin bool) context.Context {
	return context.WithValue(ctx, firstLoginKey, firstLogin)
}
