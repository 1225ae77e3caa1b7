// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/stashlab/stash/pkg/errors"
)

// Converter transforms the raw stored bytes into a typed value.
type Converter[T any] func([]byte) (T, error)

var errInvalidUTF8 = errors.New("stored bytes are not valid utf-8")

// Bytes returns the raw stored bytes unchanged.
func Bytes(raw []byte) ([]byte, error) {
	return raw, nil
}

// String decodes the raw stored bytes as UTF-8 text.
func String(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errInvalidUTF8
	}
	return string(raw), nil
}

// Int parses the raw stored bytes as a base-10 integer.
func Int(raw []byte) (int64, error) {
	return strconv.ParseInt(string(raw), 10, 64)
}

// Float parses the raw stored bytes as a floating point number.
func Float(raw []byte) (float64, error) {
	return strconv.ParseFloat(string(raw), 64)
}

// Get retrieves the value stored under key and applies conv to it.
// Absence yields the zero value with ok set to false. A converter
// failure on present data surfaces as a conversion error.
func Get[T any](ctx context.Context, svc Service, key string, conv Converter[T]) (T, bool, error) {
	var zero T

	raw, ok, err := svc.Get(ctx, key)
	if err != nil || !ok {
		return zero, ok, err
	}

	v, err := conv(raw)
	if err != nil {
		return zero, true, errors.Wrap(errors.ErrConversion, err)
	}

	return v, true, nil
}
