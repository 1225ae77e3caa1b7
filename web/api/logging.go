// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/stashlab/stash/logger"
	"github.com/stashlab/stash/web"
)

var _ web.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger logger.Logger
	svc    web.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc web.Service, logger logger.Logger) web.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm loggingMiddleware) Page(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("page for url %s took %s to complete", url, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Page(ctx, url)
}

func (lm loggingMiddleware) Visits(ctx context.Context, url string) (n uint64, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("visits for url %s took %s to complete", url, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Visits(ctx, url)
}
