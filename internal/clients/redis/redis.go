// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package redis provides a Redis client setup for stash services.
package redis

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/stashlab/stash/pkg/errors"
)

// Config holds the connection target of the external Redis server.
type Config struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
}

// Connect creates a new Redis client and verifies the server is reachable.
// An unreachable server is fatal: the caller gets no client back.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConnection, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrConnection, err)
	}

	return client, nil
}
