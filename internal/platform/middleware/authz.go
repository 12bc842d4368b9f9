// Copyright (c) 2026 Userhub. All rights reserved.

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/userhub-io/userhub/internal/platform/apperr"
	"github.com/userhub-io/userhub/internal/platform/constants"
	"github.com/userhub-io/userhub/internal/platform/ctxutil"
	"github.com/userhub-io/userhub/internal/platform/respond"
	"github.com/userhub-io/userhub/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject doubles during unit testing.
type TokenVerifier interface {
	Verify(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// It is mounted only on protected route groups, so a missing header is a hard
// rejection rather than an anonymous pass-through.
//
// # Flow
//  1. If the Authorization header is absent, abort with HTTP 401.
//  2. Take the second whitespace-delimited segment as the token. The scheme
//     itself is not inspected.
//  3. Verify signature and encoding via [TokenVerifier]; failure aborts with 401.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Missing Credentials ────────────────────────────────────────
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("Missing credentials"))
				return
			}

			// ── 2. Token Extraction ───────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) < 2 {
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}
			tokenStr := parts[1]

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose verified claims do not match the required role
// or whose embedded expiry has passed.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Status Codes
//
// Both an insufficient role and an expired token yield HTTP 403: the caller
// is authenticated either way, it just no longer holds a usable grant.
//
// # Flow
//  1. Check that [*sec.AuthClaims] exists in context (implies AuthN).
//  2. Check the role claim against the required role; mismatch aborts with 403.
//  3. Check the embedded expiry against the clock; expired aborts with 403.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Missing credentials"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if claims.Role != role.String() {
				respond.Error(writer, request, apperr.Forbidden("Insufficient role"))
				return
			}

			// ── 3. Expiry Check ───────────────────────────────────────────────
			// The expiry claim is compared here at the application level; the
			// verifier intentionally skips it (see sec.TokenService.Verify).
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				respond.Error(writer, request, apperr.Forbidden("Token expired"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
