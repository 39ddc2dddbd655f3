package middlewares

import (
	"context"
	"net/http"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// TokenExtractor pulls the bearer token string out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserAuthenticator resolves a bearer token to the owning user; it
// returns nil, nil when the token does not authenticate.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that resolves the bearer token to a
// user and stores it in the request context. Requests without a valid,
// unexpired session are rejected with 401.
func AuthMiddleware(tokens TokenExtractor, auth UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authentication error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(setUserToContext(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware resolves the bearer token when one is present
// but never rejects the request. Handlers observe a nil user for
// anonymous callers.
func OptionalAuthMiddleware(tokens TokenExtractor, auth UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokens.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil || user == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(setUserToContext(ctx, user)))
		})
	}
}

// userContextKey is an unexported type for keys in context
type userContextKey struct{}

var userKey = userContextKey{}

// setUserToContext stores the authenticated user in the context
func setUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// SetUserToContext is exposed for handler tests that bypass the
// middleware chain.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return setUserToContext(ctx, user)
}
