// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

// Package main contains stash CLI entry point.
package main

import (
	"log"
	"os"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/stashlab/stash/cli"
	"github.com/stashlab/stash/internal"
	redisclient "github.com/stashlab/stash/internal/clients/redis"
	"github.com/stashlab/stash/internal/env"
	"github.com/stashlab/stash/logger"
	"github.com/stashlab/stash/pkg/uuid"
	"github.com/stashlab/stash/store"
	storeapi "github.com/stashlab/stash/store/api"
	storeredis "github.com/stashlab/stash/store/redis"
	"github.com/stashlab/stash/web"
	webapi "github.com/stashlab/stash/web/api"
	webcache "github.com/stashlab/stash/web/cache"
)

const (
	svcName   = "stash"
	envPrefix = "STASH_"
)

type config struct {
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	PageTTL  time.Duration `env:"PAGE_TTL"  envDefault:"10s"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		log.Fatalf("failed to load %s configuration: %s", svcName, err)
	}

	logr, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf(err.Error())
	}

	rootCmd := &cobra.Command{
		Use:   "stash-cli",
		Short: "Stash CLI",
		Long:  "Stash CLI: store values in Redis under generated keys and read them back",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			redisCfg := redisclient.Config{}
			if err := env.Parse(&redisCfg, env.Options{Prefix: envPrefix}); err != nil {
				return err
			}

			client, err := redisclient.Connect(cmd.Context(), redisCfg)
			if err != nil {
				return err
			}

			svc := store.New(storeredis.NewRepository(client), uuid.New())
			svc = storeapi.LoggingMiddleware(svc, logr)
			counter, latency := internal.MakeMetrics(svcName, "store")
			svc = storeapi.MetricsMiddleware(svc, counter, latency)
			cli.SetService(svc)

			webSvc := web.New(webcache.NewPageCache(client, cfg.PageTTL), nil)
			webSvc = webapi.LoggingMiddleware(webSvc, logr)
			counter, latency = internal.MakeMetrics(svcName, "web")
			webSvc = webapi.MetricsMiddleware(webSvc, counter, latency)
			cli.SetWebService(webSvc)

			return nil
		},
	}

	rootCmd.AddCommand(cli.NewVersionCmd())
	rootCmd.AddCommand(cli.NewStashCmd())
	rootCmd.AddCommand(cli.NewWebCmd())

	rootCmd.PersistentFlags().BoolVarP(&cli.RawOutput, "raw", "r", cli.RawOutput, "Enables raw output mode for easier parsing of output")

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		logr.Error(err.Error())
		os.Exit(1)
	}
}
