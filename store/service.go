// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/stashlab/stash"
	"github.com/stashlab/stash/pkg/errors"
)

// StoreOp names the tracked store operation.
const StoreOp = "store"

const (
	callsPrefix   = "calls"
	inputsSuffix  = "inputs"
	outputsSuffix = "outputs"
)

// Service specifies the value stash API.
type Service interface {
	// Store writes value under a freshly generated identifier and
	// returns the identifier. Accepted values are text, byte sequences,
	// integers and floats. Each call yields a distinct identifier.
	Store(ctx context.Context, value interface{}) (string, error)

	// Get reads the raw bytes stored under key. The second return value
	// is false when no value is stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// GetString reads the value under key as UTF-8 text.
	GetString(ctx context.Context, key string) (string, bool, error)

	// GetInt reads the value under key as an integer.
	GetInt(ctx context.Context, key string) (int64, bool, error)

	// GetFloat reads the value under key as a float.
	GetFloat(ctx context.Context, key string) (float64, bool, error)

	// Calls reports how many times the named operation ran.
	Calls(ctx context.Context, op string) (uint64, error)

	// Replay returns the recorded input/output history of the named
	// operation together with its call count.
	Replay(ctx context.Context, op string) ([]Call, uint64, error)
}

var _ Service = (*stashService)(nil)

type stashService struct {
	repo Repository
	idp  stash.IDProvider
}

// New instantiates the stash service over the given repository.
func New(repo Repository, idp stash.IDProvider) Service {
	return &stashService{
		repo: repo,
		idp:  idp,
	}
}

func (svc *stashService) Store(ctx context.Context, value interface{}) (string, error) {
	if err := validate(value); err != nil {
		return "", err
	}

	key, err := svc.idp.ID()
	if err != nil {
		return "", err
	}

	if _, err := svc.repo.Incr(ctx, callsKey(StoreOp)); err != nil {
		return "", err
	}
	if err := svc.repo.Append(ctx, historyKey(StoreOp, inputsSuffix), fmt.Sprintf("%v", value)); err != nil {
		return "", err
	}

	if err := svc.repo.Save(ctx, key, value); err != nil {
		return "", err
	}

	if err := svc.repo.Append(ctx, historyKey(StoreOp, outputsSuffix), key); err != nil {
		return "", err
	}

	return key, nil
}

func (svc *stashService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return svc.repo.Retrieve(ctx, key)
}

func (svc *stashService) GetString(ctx context.Context, key string) (string, bool, error) {
	return Get(ctx, svc, key, String)
}

func (svc *stashService) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return Get(ctx, svc, key, Int)
}

func (svc *stashService) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return Get(ctx, svc, key, Float)
}

func (svc *stashService) Calls(ctx context.Context, op string) (uint64, error) {
	return svc.repo.Count(ctx, callsKey(op))
}

func (svc *stashService) Replay(ctx context.Context, op string) ([]Call, uint64, error) {
	count, err := svc.repo.Count(ctx, callsKey(op))
	if err != nil {
		return nil, 0, err
	}

	inputs, err := svc.repo.List(ctx, historyKey(op, inputsSuffix))
	if err != nil {
		return nil, 0, err
	}
	outputs, err := svc.repo.List(ctx, historyKey(op, outputsSuffix))
	if err != nil {
		return nil, 0, err
	}

	n := len(inputs)
	if len(outputs) < n {
		n = len(outputs)
	}
	calls := make([]Call, 0, n)
	for i := 0; i < n; i++ {
		calls = append(calls, Call{Input: inputs[i], Output: outputs[i]})
	}

	return calls, count, nil
}

func validate(value interface{}) error {
	switch value.(type) {
	case string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return errors.Wrap(errors.ErrUnsupportedValue, fmt.Errorf("%T", value))
	}
}

func callsKey(op string) string {
	return fmt.Sprintf("%s:%s", callsPrefix, op)
}

func historyKey(op, kind string) string {
	return fmt.Sprintf("%s:%s", op, kind)
}
