// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"io"
	"net/http"

	"github.com/stashlab/stash/pkg/errors"
)

// ErrFetch indicates failure to fetch the remote page.
var ErrFetch = errors.New("failed to fetch page")

// Service specifies the web cache API.
type Service interface {
	// Page returns the body of the page at url, counting the access and
	// serving a cached copy when one is still fresh.
	Page(ctx context.Context, url string) (string, error)

	// Visits reports how many times the page at url was requested.
	Visits(ctx context.Context, url string) (uint64, error)
}

var _ Service = (*webService)(nil)

type webService struct {
	cache  Cache
	client *http.Client
}

// New instantiates the web cache service. A nil client falls back to
// http.DefaultClient.
func New(cache Cache, client *http.Client) Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &webService{
		cache:  cache,
		client: client,
	}
}

func (svc *webService) Page(ctx context.Context, url string) (string, error) {
	if _, err := svc.cache.IncrVisits(ctx, url); err != nil {
		return "", err
	}

	if body, ok, err := svc.cache.Page(ctx, url); err != nil {
		return "", err
	} else if ok {
		return body, nil
	}

	body, err := svc.fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := svc.cache.SavePage(ctx, url, body); err != nil {
		return "", err
	}

	return body, nil
}

func (svc *webService) Visits(ctx context.Context, url string) (uint64, error) {
	return svc.cache.Visits(ctx, url)
}

func (svc *webService) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(ErrFetch, err)
	}

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(ErrFetch, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrap(ErrFetch, err)
	}

	return string(body), nil
}
