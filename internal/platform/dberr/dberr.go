// Copyright (c) 2026 Userhub. All rights reserved.

// Package dberr provides a bridge between low-level document store errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub-io/userhub/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried document doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides internal store details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// 2. Unique index violations (E11000) become Conflict responses.
	// The store is the arbiter of races on unique fields; the losing
	// writer surfaces here.
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Resource already exists")
	}

	// 3. Unknown store errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
