// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package store provides a value stash on top of an external key-value
// engine. Values are written under freshly generated opaque identifiers
// and read back with optional typed conversion.
package store

import (
	"context"
)

// Call is one recorded invocation of a tracked operation.
type Call struct {
	// Input holds the rendered input of the call.
	Input string `json:"input"`

	// Output holds the rendered output of the call.
	Output string `json:"output"`
}

// Repository specifies the raw operations required from the external
// key-value engine. Every method is a single blocking round trip.
type Repository interface {
	// Save writes value under key.
	Save(ctx context.Context, key string, value interface{}) error

	// Retrieve reads the raw bytes stored under key. The second return
	// value is false when the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, bool, error)

	// Incr increments the counter under key and returns the new value.
	Incr(ctx context.Context, key string) (uint64, error)

	// Count reads the counter under key. Missing counters read as zero.
	Count(ctx context.Context, key string) (uint64, error)

	// Append appends entry to the list stored under key.
	Append(ctx context.Context, key, entry string) error

	// List returns all entries of the list stored under key.
	List(ctx context.Context, key string) ([]string, error)
}
