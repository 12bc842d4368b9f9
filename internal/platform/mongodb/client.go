// Copyright (c) 2026 Userhub. All rights reserved.

/*
Package mongodb provides a managed client for the primary document store.

It owns connection lifecycle concerns only: URL parsing, pool sizing,
connect/ping timeouts, and health checking. Collection-level access lives with
the domain repositories.
*/
package mongodb

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated default timeouts for store operations.
const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 2 * time.Second

	maxPoolSize = 20
	minPoolSize = 2
)

// NewClient connects to MongoDB and verifies the connection with a ping.
//
// # Parameters
//   - context: Context for the initial connect and ping.
//   - mongoURL: MongoDB connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, mongoURL string, logger *slog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize)

	client, err := mongo.Connect(context, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect: %w", err)
	}

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Disconnect(context)
		return nil, err
	}

	logger.Info("mongodb client connected",
		slog.Int("max_pool_size", maxPoolSize),
	)

	return client, nil
}

// Ping verifies that the MongoDB client is healthy.
func Ping(context stdctx.Context, client *mongo.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}
