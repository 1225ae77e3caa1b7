// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package cache contains the Redis implementation of the web page cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/stashlab/stash/pkg/errors"
	"github.com/stashlab/stash/web"
)

const (
	pagePrefix  = "page"
	countPrefix = "count"
)

// DefPageTTL is how long a cached page stays fresh unless configured otherwise.
const DefPageTTL = 10 * time.Second

var _ web.Cache = (*pageCache)(nil)

type pageCache struct {
	client  *redis.Client
	pageTTL time.Duration
}

// NewPageCache returns a Redis page cache implementation. Cached pages
// expire after ttl; a non-positive ttl falls back to DefPageTTL.
func NewPageCache(client *redis.Client, ttl time.Duration) web.Cache {
	if ttl <= 0 {
		ttl = DefPageTTL
	}
	return &pageCache{
		client:  client,
		pageTTL: ttl,
	}
}

func (pc *pageCache) Page(ctx context.Context, url string) (string, bool, error) {
	body, err := pc.client.Get(ctx, key(pagePrefix, url)).Result()
	// Redis returns Nil Reply when key does not exist.
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrUnavailable, err)
	}

	return body, true, nil
}

func (pc *pageCache) SavePage(ctx context.Context, url, body string) error {
	if err := pc.client.Set(ctx, key(pagePrefix, url), body, pc.pageTTL).Err(); err != nil {
		return errors.Wrap(errors.ErrUnavailable, err)
	}

	return nil
}

func (pc *pageCache) IncrVisits(ctx context.Context, url string) (uint64, error) {
	n, err := pc.client.Incr(ctx, key(countPrefix, url)).Result()
	if err != nil {
		return 0, errors.Wrap(errors.ErrUnavailable, err)
	}

	return uint64(n), nil
}

func (pc *pageCache) Visits(ctx context.Context, url string) (uint64, error) {
	n, err := pc.client.Get(ctx, key(countPrefix, url)).Uint64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrUnavailable, err)
	}

	return n, nil
}

func key(prefix, url string) string {
	return fmt.Sprintf("%s:%s", prefix, url)
}
