package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userhub-io/userhub/internal/auth"
	"github.com/userhub-io/userhub/internal/platform/sec"
)

func TestLogin_IssuesAdminToken(t *testing.T) {
	tokenService := sec.NewTokenService([]byte("test-secret"), "userhub.dev")
	service := auth.NewService(tokenService, slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := auth.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/", handler.Routes())
	})

	request := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// The returned token verifies with the same secret and carries the
	// admin role and a five-minute lifetime.
	claims, err := tokenService.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin.String(), claims.Role)
	assert.Equal(t, "userhub.dev", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(300*time.Second), claims.ExpiresAt.Time, 5*time.Second)
}

type failingIssuer struct{}

func (failingIssuer) Issue(string, time.Duration) (string, error) {
	return "", assert.AnError
}

func TestLogin_SigningFailure(t *testing.T) {
	service := auth.NewService(failingIssuer{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := auth.NewHandler(service)

	router := chi.NewRouter()
	router.Mount("/", handler.Routes())

	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}
