package middlewares

import (
	"context"
	"net/http"

	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionChecker reports whether a token id has been revoked by logout.
type SessionChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that authenticates the request
// from its bearer token and stores the claims in the request context.
// Requests without a valid, unrevoked token get 401.
func AuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			revoked, err := sessions.IsRevoked(ctx, claims.ID)
			if err != nil {
				logger.Log.Errorw("revocation check failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.Log.Errorw("authorization failed: token revoked", "token_id", claims.ID)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var claimsKey = contextKey{}

// SetClaimsToContext stores token claims in the context
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the authenticated claims from the
// context. Returns nil if the request is anonymous.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
