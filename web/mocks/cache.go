// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains an in-memory web page cache for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/stashlab/stash/web"
)

var _ web.Cache = (*cacheMock)(nil)

type cacheMock struct {
	mu     sync.Mutex
	pages  map[string]string
	visits map[string]uint64
}

// NewCache returns an in-memory web page cache. Cached pages never expire.
func NewCache() web.Cache {
	return &cacheMock{
		pages:  make(map[string]string),
		visits: make(map[string]uint64),
	}
}

func (m *cacheMock) Page(_ context.Context, url string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	body, ok := m.pages[url]
	return body, ok, nil
}

func (m *cacheMock) SavePage(_ context.Context, url, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pages[url] = body
	return nil
}

func (m *cacheMock) IncrVisits(_ context.Context, url string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.visits[url]++
	return m.visits[url], nil
}

func (m *cacheMock) Visits(_ context.Context, url string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.visits[url], nil
}
