// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/stashlab/stash/web"
)

var _ web.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     web.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc web.Service, counter metrics.Counter, latency metrics.Histogram) web.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) Page(ctx context.Context, url string) (string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "page").Add(1)
		ms.latency.With("method", "page").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Page(ctx, url)
}

func (ms *metricsMiddleware) Visits(ctx context.Context, url string) (uint64, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "visits").Add(1)
		ms.latency.With("method", "visits").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Visits(ctx, url)
}
