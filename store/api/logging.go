// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

//go:build !test

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/stashlab/stash/logger"
	"github.com/stashlab/stash/store"
)

var _ store.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger logger.Logger
	svc    store.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc store.Service, logger logger.Logger) store.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm loggingMiddleware) Store(ctx context.Context, value interface{}) (key string, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("store for key %s took %s to complete", key, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Store(ctx, value)
}

func (lm loggingMiddleware) Get(ctx context.Context, key string) (raw []byte, ok bool, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("get for key %s took %s to complete", key, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Get(ctx, key)
}

func (lm loggingMiddleware) GetString(ctx context.Context, key string) (v string, ok bool, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("get_string for key %s took %s to complete", key, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.GetString(ctx, key)
}

func (lm loggingMiddleware) GetInt(ctx context.Context, key string) (v int64, ok bool, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("get_int for key %s took %s to complete", key, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.GetInt(ctx, key)
}

func (lm loggingMiddleware) GetFloat(ctx context.Context, key string) (v float64, ok bool, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("get_float for key %s took %s to complete", key, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.GetFloat(ctx, key)
}

func (lm loggingMiddleware) Calls(ctx context.Context, op string) (n uint64, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("calls for op %s took %s to complete", op, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Calls(ctx, op)
}

func (lm loggingMiddleware) Replay(ctx context.Context, op string) (calls []store.Call, n uint64, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("replay for op %s took %s to complete", op, time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s.", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors.", message))
	}(time.Now())

	return lm.svc.Replay(ctx, op)
}
