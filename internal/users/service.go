package users

import (
	"context"
	"log/slog"

	"github.com/userhub-io/userhub/internal/platform/apperr"
	"github.com/userhub-io/userhub/internal/platform/validate"
	"github.com/userhub-io/userhub/pkg/listquery"
)

// UserCache is the subset of the platform cache used by the service.
//
// Cache failures are logged and swallowed; the document store remains the
// source of truth.
type UserCache interface {
	Get(context context.Context, key string, dest interface{}) (bool, error)
	Set(context context.Context, key string, value interface{}) error
	Delete(context context.Context, key string) error
}

type Service struct {
	repo   Repository
	cache  UserCache
	logger *slog.Logger
}

func NewService(repo Repository, cache UserCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) List(context context.Context, q listquery.Params) ([]*User, error) {
	return service.repo.List(context, q)
}

func (service *Service) Create(context context.Context, rawUsername string) (*User, error) {
	username, err := sanitizeUsername(rawUsername)
	if err != nil {
		return nil, err
	}

	user, err := service.repo.Create(context, username)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_created", slog.String("username", user.Username))
	return user, nil
}

func (service *Service) Get(context context.Context, id string) (*User, error) {
	if service.cache != nil {
		cached := &User{}
		hit, err := service.cache.Get(context, id, cached)
		if err != nil {
			service.logger.Warn("user_cache_read_failed", slog.Any("error", err))
		}
		if hit {
			return cached, nil
		}
	}

	user, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	if service.cache != nil {
		if err := service.cache.Set(context, id, user); err != nil {
			service.logger.Warn("user_cache_write_failed", slog.Any("error", err))
		}
	}

	return user, nil
}

func (service *Service) Update(context context.Context, id, rawUsername string) (*User, error) {
	username, err := sanitizeUsername(rawUsername)
	if err != nil {
		return nil, err
	}

	user, err := service.repo.UpdateByID(context, id, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	service.invalidate(context, id)
	service.logger.Info("user_updated", slog.String("user_id", id))
	return user, nil
}

func (service *Service) Delete(context context.Context, id string) (*User, error) {
	user, err := service.repo.DeleteByID(context, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	service.invalidate(context, id)
	service.logger.Warn("user_deleted", slog.String("user_id", id))
	return user, nil
}

// invalidate drops the cached copy after a mutation. Best effort only.
func (service *Service) invalidate(context context.Context, id string) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Delete(context, id); err != nil {
		service.logger.Warn("user_cache_invalidate_failed", slog.Any("error", err))
	}
}

// sanitizeUsername trims, validates, and HTML-escapes a raw username.
// Sanitization is all-or-nothing: a failing value is never partially applied.
func sanitizeUsername(raw string) (string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, raw)

	if err := validator.Err(); err != nil {
		return "", err
	}

	return validate.SanitizeHTML(raw), nil
}
