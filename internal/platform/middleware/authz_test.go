// Copyright (c) 2026 Userhub. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userhub-io/userhub/internal/platform/middleware"
	"github.com/userhub-io/userhub/internal/platform/sec"
)

// stubVerifier is a controllable TokenVerifier double.
type stubVerifier struct {
	claims   *sec.AuthClaims
	err      error
	gotToken string
}

func (s *stubVerifier) Verify(tokenStr string) (*sec.AuthClaims, error) {
	s.gotToken = tokenStr
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func claimsWith(role string, expiresIn time.Duration) *sec.AuthClaims {
	return &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Role: role,
	}
}

// newProtectedRouter mounts a trivial handler behind the full auth gate.
func newProtectedRouter(verifier middleware.TokenVerifier) http.Handler {
	router := chi.NewRouter()
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.Authenticate(verifier))
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Get("/protected", func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})
	})
	return router
}

/*
TestAuthGate covers the full admission state machine: missing credentials,
malformed tokens, insufficient role, expired token, and success.
*/
func TestAuthGate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *stubVerifier
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing_header",
			header:     "",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "header_without_token",
			header:     "Bearer",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "verification_failure",
			header:     "Bearer bad-token",
			verifier:   &stubVerifier{err: errors.New("bad signature")},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "insufficient_role",
			header:     "Bearer member-token",
			verifier:   &stubVerifier{claims: claimsWith("member", time.Minute)},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "expired_token",
			header:     "Bearer stale-token",
			verifier:   &stubVerifier{claims: claimsWith("admin", -time.Minute)},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "admitted",
			header:     "Bearer good-token",
			verifier:   &stubVerifier{claims: claimsWith("admin", time.Minute)},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(tt.verifier)

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantCode != "" {
				var body struct {
					Code string `json:"code"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

/*
TestAuthGate_SchemeNotValidated confirms the gate takes the second
whitespace-delimited segment without inspecting the scheme itself.
*/
func TestAuthGate_SchemeNotValidated(t *testing.T) {
	verifier := &stubVerifier{claims: claimsWith("admin", time.Minute)}
	router := newProtectedRouter(verifier)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Token abc123")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "abc123", verifier.gotToken)
}
