// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	redisclient "github.com/stashlab/stash/internal/clients/redis"
)

type testConfig struct {
	LogLevel string        `env:"LOG_LEVEL"   envDefault:"info"`
	CacheTTL time.Duration `env:"CACHE_TTL"   envDefault:"10s"`
}

func TestParseRedisConfig(t *testing.T) {
	tests := []struct {
		description    string
		config         *redisclient.Config
		expectedConfig *redisclient.Config
		options        []Options
		err            error
	}{
		{
			"parse redis config from environment",
			&redisclient.Config{},
			&redisclient.Config{
				URL: "redis://cache:6379/1",
			},
			[]Options{
				{
					Environment: map[string]string{
						"URL": "redis://cache:6379/1",
					},
				},
			},
			nil,
		},
		{
			"parse redis config with prefix",
			&redisclient.Config{},
			&redisclient.Config{
				URL: "redis://cache:6379/2",
			},
			[]Options{
				{
					Environment: map[string]string{
						"STASH_URL": "redis://cache:6379/2",
					},
					Prefix: "STASH_",
				},
			},
			nil,
		},
		{
			"parse redis config with default",
			&redisclient.Config{},
			&redisclient.Config{
				URL: "redis://localhost:6379/0",
			},
			[]Options{},
			nil,
		},
	}
	for _, test := range tests {
		err := Parse(test.config, test.options...)
		assert.Equal(t, test.err, err, fmt.Sprintf("%s: expected %v got %v", test.description, test.err, err))
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("%s: expected %v got %v", test.description, test.expectedConfig, test.config))
	}
}

func TestParseCustomConfig(t *testing.T) {
	cfg := testConfig{}
	err := Parse(&cfg, Options{Environment: map[string]string{
		"LOG_LEVEL": "debug",
		"CACHE_TTL": "30s",
	}})
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}
