// Copyright (c) 2026 F3 Nation. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/f3nation/f3api/internal/domain/result"
	"github.com/f3nation/f3api/internal/platform/constants"
	"github.com/f3nation/f3api/internal/platform/ctxutil"
	"github.com/f3nation/f3api/internal/platform/respond"
	"github.com/f3nation/f3api/internal/platform/sec"
)

// TokenVerifier validates an access token and returns the embedded claims.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate resolves the bearer token, if present, into auth claims on the
// request context. Requests without an Authorization header pass through
// anonymously; routes decide whether auth is required via RequireRole.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			header := request.Header.Get(constants.HeaderAuthorization)
			if header == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				respond.DomainError(writer, request, result.NotAuthorized("Invalid authorization header format"))
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				respond.DomainError(writer, request, result.NotAuthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose caller is anonymous or below the
// minimum role. It must sit after Authenticate in the chain.
func RequireRole(minimum sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.DomainError(writer, request, result.NotAuthorized("Authentication required"))
				return
			}

			callerRole := sec.Role(claims.Role)
			if !callerRole.AtLeast(minimum) {
				respond.DomainError(writer, request, result.Forbidden("Insufficient role for this action"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
