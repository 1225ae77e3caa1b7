// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package web_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlab/stash/pkg/errors"
	"github.com/stashlab/stash/web"
	"github.com/stashlab/stash/web/mocks"
)

func TestPage(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, "<html>hello</html>")
	}))
	defer ts.Close()

	svc := web.New(mocks.NewCache(), ts.Client())

	body, err := svc.Page(context.Background(), ts.URL)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, "<html>hello</html>", body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "first request must reach the origin")

	body, err = svc.Page(context.Background(), ts.URL)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, "<html>hello</html>", body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second request must be served from cache")

	n, err := svc.Visits(context.Background(), ts.URL)
	assert.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, uint64(2), n, "every request counts, cached or not")
}

func TestPageFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	svc := web.New(mocks.NewCache(), nil)

	_, err := svc.Page(context.Background(), ts.URL)
	assert.True(t, errors.Contains(err, web.ErrFetch), fmt.Sprintf("expected fetch error, got %v", err))
}

func TestVisitsUnknownURL(t *testing.T) {
	svc := web.New(mocks.NewCache(), nil)

	n, err := svc.Visits(context.Background(), "http://never-visited.example")
	assert.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, uint64(0), n, "unknown url reads as zero visits")
}
