// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrConnection indicates failure to reach the storage engine at setup time.
	ErrConnection = New("failed to connect to storage engine")

	// ErrUnavailable indicates a store or retrieve round trip failed mid-operation.
	ErrUnavailable = New("storage engine unavailable")

	// ErrConversion indicates the output converter rejected the raw data.
	ErrConversion = New("failed to convert stored value")

	// ErrUnsupportedValue indicates a value outside the accepted primitive types.
	ErrUnsupportedValue = New("unsupported value type")
)
