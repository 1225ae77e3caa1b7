// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package redis contains the Redis implementation of the stash repository.
package redis

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/stashlab/stash/pkg/errors"
	"github.com/stashlab/stash/store"
)

var _ store.Repository = (*repository)(nil)

type repository struct {
	client *redis.Client
}

// NewRepository returns a Redis stash repository implementation.
func NewRepository(client *redis.Client) store.Repository {
	return &repository{
		client: client,
	}
}

func (r *repository) Save(ctx context.Context, key string, value interface{}) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrUnavailable, err)
	}

	return nil
}

func (r *repository) Retrieve(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	// Redis returns Nil Reply when key does not exist.
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrUnavailable, err)
	}

	return raw, true, nil
}

func (r *repository) Incr(ctx context.Context, key string) (uint64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(errors.ErrUnavailable, err)
	}

	return uint64(n), nil
}

func (r *repository) Count(ctx context.Context, key string) (uint64, error) {
	n, err := r.client.Get(ctx, key).Uint64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrUnavailable, err)
	}

	return n, nil
}

func (r *repository) Append(ctx context.Context, key, entry string) error {
	if err := r.client.RPush(ctx, key, entry).Err(); err != nil {
		return errors.Wrap(errors.ErrUnavailable, err)
	}

	return nil
}

func (r *repository) List(ctx context.Context, key string) ([]string, error) {
	entries, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrUnavailable, err)
	}

	return entries, nil
}
