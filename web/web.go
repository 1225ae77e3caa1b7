// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package web provides a page fetcher with a short-lived cache and a
// per-URL visit counter backed by an external key-value engine.
package web

import (
	"context"
)

// Cache specifies the page cache API backed by the external engine.
// Cached pages expire according to the implementation's retention.
type Cache interface {
	// Page reads the cached body for url. The second return value is
	// false when no fresh copy is cached.
	Page(ctx context.Context, url string) (string, bool, error)

	// SavePage caches body for url.
	SavePage(ctx context.Context, url, body string) error

	// IncrVisits increments the visit counter for url.
	IncrVisits(ctx context.Context, url string) (uint64, error)

	// Visits reads the visit counter for url. Missing counters read as zero.
	Visits(ctx context.Context, url string) (uint64, error)
}
