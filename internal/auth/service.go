// Package auth implements the token issuance use case.
//
// # Architecture
//
// The service orchestrates the platform token primitives; it is
// technology-agnostic and does not know about HTTP.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/userhub-io/userhub/internal/platform/apperr"
	"github.com/userhub-io/userhub/internal/platform/constants"
	"github.com/userhub-io/userhub/internal/platform/sec"
)

// TokenIssuer defines the contract for generating signed tokens.
type TokenIssuer interface {
	// Issue creates a signed token carrying the role claim, expiring after
	// timeToLive.
	Issue(role string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
type Service struct {
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService constructs a new [Service] with its token dependency.
func NewService(tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		tokens: tokens,
		logger: logger,
	}
}

// Login issues a short-lived admin token.
//
// Tokens are never stored server-side: validity is re-derived from the
// signature and embedded timestamps on every use, and expiry is the only
// termination path.
func (service *Service) Login(context context.Context) (string, error) {
	token, err := service.tokens.Issue(sec.RoleAdmin.String(), constants.AccessTokenTTL)
	if err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.Info("token_issued",
		slog.String("role", sec.RoleAdmin.String()),
		slog.Duration("ttl", constants.AccessTokenTTL),
	)
	return token, nil
}
