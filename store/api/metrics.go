// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/stashlab/stash/store"
)

var _ store.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     store.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc store.Service, counter metrics.Counter, latency metrics.Histogram) store.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) Store(ctx context.Context, value interface{}) (string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "store").Add(1)
		ms.latency.With("method", "store").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Store(ctx, value)
}

func (ms *metricsMiddleware) Get(ctx context.Context, key string) ([]byte, bool, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get").Add(1)
		ms.latency.With("method", "get").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Get(ctx, key)
}

func (ms *metricsMiddleware) GetString(ctx context.Context, key string) (string, bool, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get_string").Add(1)
		ms.latency.With("method", "get_string").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.GetString(ctx, key)
}

func (ms *metricsMiddleware) GetInt(ctx context.Context, key string) (int64, bool, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get_int").Add(1)
		ms.latency.With("method", "get_int").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.GetInt(ctx, key)
}

func (ms *metricsMiddleware) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get_float").Add(1)
		ms.latency.With("method", "get_float").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.GetFloat(ctx, key)
}

func (ms *metricsMiddleware) Calls(ctx context.Context, op string) (uint64, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "calls").Add(1)
		ms.latency.With("method", "calls").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Calls(ctx, op)
}

func (ms *metricsMiddleware) Replay(ctx context.Context, op string) ([]store.Call, uint64, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "replay").Add(1)
		ms.latency.With("method", "replay").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Replay(ctx, op)
}
