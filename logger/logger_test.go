// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	log "github.com/stashlab/stash/logger"
)

var _ io.Writer = (*mockWriter)(nil)

type mockWriter struct {
	value []byte
}

func (writer *mockWriter) Write(p []byte) (int, error) {
	writer.value = p
	return len(p), nil
}

func (writer *mockWriter) Read() (logMsg, error) {
	var output logMsg
	err := json.Unmarshal(writer.value, &output)
	return output, err
}

type logMsg struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func TestDebug(t *testing.T) {
	cases := []struct {
		desc   string
		input  string
		level  string
		output logMsg
	}{
		{
			desc:   "debug log ordinary string",
			input:  "input_string",
			level:  log.Debug.String(),
			output: logMsg{log.Debug.String(), "input_string"},
		},
		{
			desc:   "debug log empty string",
			input:  "",
			level:  log.Debug.String(),
			output: logMsg{log.Debug.String(), ""},
		},
		{
			desc:   "debug ordinary string lvl not allowed",
			input:  "input_string",
			level:  log.Info.String(),
			output: logMsg{"", ""},
		},
	}

	for _, tc := range cases {
		writer := mockWriter{}
		logger, err := log.New(&writer, tc.level)
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		logger.Debug(tc.input)
		output, _ := writer.Read()
		assert.Equal(t, tc.output, output, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.output, output))
	}
}

func TestInfo(t *testing.T) {
	cases := []struct {
		desc   string
		input  string
		level  string
		output logMsg
	}{
		{
			desc:   "info log ordinary string",
			input:  "input_string",
			level:  log.Info.String(),
			output: logMsg{log.Info.String(), "input_string"},
		},
		{
			desc:   "info ordinary string lvl not allowed",
			input:  "input_string",
			level:  log.Warn.String(),
			output: logMsg{"", ""},
		},
	}

	for _, tc := range cases {
		writer := mockWriter{}
		logger, err := log.New(&writer, tc.level)
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		logger.Info(tc.input)
		output, _ := writer.Read()
		assert.Equal(t, tc.output, output, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.output, output))
	}
}

func TestWarn(t *testing.T) {
	cases := []struct {
		desc   string
		input  string
		level  string
		output logMsg
	}{
		{
			desc:   "warn log ordinary string",
			input:  "input_string",
			level:  log.Warn.String(),
			output: logMsg{log.Warn.String(), "input_string"},
		},
		{
			desc:   "warn ordinary string lvl not allowed",
			input:  "input_string",
			level:  log.Error.String(),
			output: logMsg{"", ""},
		},
	}

	for _, tc := range cases {
		writer := mockWriter{}
		logger, err := log.New(&writer, tc.level)
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		logger.Warn(tc.input)
		output, _ := writer.Read()
		assert.Equal(t, tc.output, output, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.output, output))
	}
}

func TestError(t *testing.T) {
	cases := []struct {
		desc   string
		input  string
		level  string
		output logMsg
	}{
		{
			desc:   "error log ordinary string",
			input:  "input_string",
			level:  log.Error.String(),
			output: logMsg{log.Error.String(), "input_string"},
		},
		{
			desc:   "error log empty string",
			input:  "",
			level:  log.Error.String(),
			output: logMsg{log.Error.String(), ""},
		},
	}

	for _, tc := range cases {
		writer := mockWriter{}
		logger, err := log.New(&writer, tc.level)
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		logger.Error(tc.input)
		output, _ := writer.Read()
		assert.Equal(t, tc.output, output, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.output, output))
	}
}

func TestInvalidLevel(t *testing.T) {
	writer := mockWriter{}
	_, err := log.New(&writer, "shout")
	assert.NotNil(t, err, "expected an error for unrecognized level")
}
