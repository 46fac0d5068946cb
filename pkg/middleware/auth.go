package middleware

import (
	"context"
	"net/http"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserFinder is the slice of the user repository the auth gate needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// TokenFromRequest reads the session cookie, falling back to
// "Authorization: Bearer <token>" for non-browser clients.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate validates the JWT and loads the user it names, so role and
// active flag are always current.
func Authenticate(users UserFinder, cfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cfg.CookieName)
			if token == "" {
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			}

			claims, err := utils.ParseToken(cfg.Secret, token)
			if err != nil {
				logger.Warn("Rejected token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "Not authorized, user not found")
				return
			}

			if !user.IsActive {
				utils.ResponseForbidden(w, "Account is deactivated")
				return
			}

			// Set context dengan user info
			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetFirstLoginContext(ctx, user.IsFirstLogin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - middleware cek role admin. Harus dipasang setelah Authenticate.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !utils.IsAdminFromContext(r.Context()) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// routes a first-login user may still reach
var passwordChangeExempt = map[string]bool{
	http.MethodGet + " /api/auth/me":       true,
	http.MethodPost + " /api/auth/logout":  true,
	http.MethodPut + " /api/users/profile": true,
}

// RequirePasswordChange blocks a user who still has the temporary password
// everywhere except the profile flow.
func RequirePasswordChange(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.GetFirstLoginFromContext(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			path := strings.TrimRight(r.URL.Path, "/")
			if passwordChangeExempt[r.Method+" "+path] {
				next.ServeHTTP(w, r)
				return
			}

			logger.Info("First-login user blocked", zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "password change required")
		})
	}
}
