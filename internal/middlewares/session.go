package middlewares

//go:generate mockgen -source=session.go -destination=mock_session.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/ive-had-worse/internal/jwt"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type sessionKey struct{}

// SessionMiddleware reads an optional bearer token. Requests without an
// Authorization header pass through untouched; a header carrying an invalid
// token is rejected with 401.
func SessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return sessionMiddleware(tokener, true)
}

// LenientSessionMiddleware reads an optional bearer token like
// SessionMiddleware, but serves requests with an invalid or expired token
// anonymously instead of rejecting them.
func LenientSessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return sessionMiddleware(tokener, false)
}

func sessionMiddleware(tokener Tokener, strict bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			claims, err := readSession(ctx, tokener, r)
			if err != nil {
				logger.FromContext(ctx).Warnw("authorization failed", "strict", strict, "err", err)
				if strict {
					writeError(w, http.StatusUnauthorized, codeInvalidCredentials)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, claims)))
		})
	}
}

func readSession(ctx context.Context, tokener Tokener, r *http.Request) (*jwt.Claims, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return tokener.GetClaims(ctx, tokenString)
}

// WithSession stores the session claims in the context.
func WithSession(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, sessionKey{}, claims)
}

// SessionFromContext returns the session claims of an authenticated request.
func SessionFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(sessionKey{}).(*jwt.Claims)
	return claims, ok && claims != nil
}
