// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains an in-memory stash repository for testing.
package mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/stashlab/stash/pkg/errors"
	"github.com/stashlab/stash/store"
)

var _ store.Repository = (*repositoryMock)(nil)

type repositoryMock struct {
	mu       sync.Mutex
	values   map[string][]byte
	counters map[string]uint64
	lists    map[string][]string
}

// NewRepository returns an in-memory stash repository.
func NewRepository() store.Repository {
	return &repositoryMock{
		values:   make(map[string][]byte),
		counters: make(map[string]uint64),
		lists:    make(map[string][]string),
	}
}

func (m *repositoryMock) Save(_ context.Context, key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = encode(value)
	return nil
}

func (m *repositoryMock) Retrieve(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (m *repositoryMock) Incr(_ context.Context, key string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[key]++
	return m.counters[key], nil
}

func (m *repositoryMock) Count(_ context.Context, key string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counters[key], nil
}

func (m *repositoryMock) Append(_ context.Context, key, entry string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[key] = append(m.lists[key], entry)
	return nil
}

func (m *repositoryMock) List(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string{}, m.lists[key]...), nil
}

// encode renders a value the way the Redis wire protocol would store it.
func encode(value interface{}) []byte {
	switch v := value.(type) {
	case string:
		return []byte(v)
	case []byte:
		return append([]byte{}, v...)
	case int:
		return strconv.AppendInt(nil, int64(v), 10)
	case int8:
		return strconv.AppendInt(nil, int64(v), 10)
	case int16:
		return strconv.AppendInt(nil, int64(v), 10)
	case int32:
		return strconv.AppendInt(nil, int64(v), 10)
	case int64:
		return strconv.AppendInt(nil, v, 10)
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(nil, v, 10)
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(nil, v, 'f', -1, 64)
	default:
		return []byte(fmt.Sprintf("%v", v))
	}
}

var _ store.Repository = (*unavailableMock)(nil)

type unavailableMock struct{}

// NewUnavailableRepository returns a repository whose every round trip
// fails, mimicking a lost connection to the engine.
func NewUnavailableRepository() store.Repository {
	return &unavailableMock{}
}

func (m *unavailableMock) Save(context.Context, string, interface{}) error {
	return errors.ErrUnavailable
}

func (m *unavailableMock) Retrieve(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.ErrUnavailable
}

func (m *unavailableMock) Incr(context.Context, string) (uint64, error) {
	return 0, errors.ErrUnavailable
}

func (m *unavailableMock) Count(context.Context, string) (uint64, error) {
	return 0, errors.ErrUnavailable
}

func (m *unavailableMock) Append(context.Context, string, string) error {
	return errors.ErrUnavailable
}

func (m *unavailableMock) List(context.Context, string) ([]string, error) {
	return nil, errors.ErrUnavailable
}
