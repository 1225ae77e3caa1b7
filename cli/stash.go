// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/base64"

	"github.com/spf13/cobra"
)

var cmdStash = []cobra.Command{
	{
		Use:   "store <value>",
		Short: "Store value",
		Long:  "Stores a value under a freshly generated key and prints the key",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			key, err := svc.Store(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logCreatedCmd(*cmd, key)
		},
	},
	{
		Use:   "get <key>",
		Short: "Get value",
		Long:  "Retrieves the value stored under <key>, converted per the --as flag",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			switch As {
			case "string":
				v, ok, err := svc.GetString(cmd.Context(), args[0])
				logGetCmd(*cmd, v, ok, err)
			case "int":
				v, ok, err := svc.GetInt(cmd.Context(), args[0])
				logGetCmd(*cmd, v, ok, err)
			case "float":
				v, ok, err := svc.GetFloat(cmd.Context(), args[0])
				logGetCmd(*cmd, v, ok, err)
			case "raw":
				raw, ok, err := svc.Get(cmd.Context(), args[0])
				logGetCmd(*cmd, base64.StdEncoding.EncodeToString(raw), ok, err)
			default:
				logUsageCmd(*cmd, "get <key> --as [string|int|float|raw]")
			}
		},
	},
	{
		Use:   "calls <op>",
		Short: "Call count",
		Long:  "Prints how many times the named operation ran",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			n, err := svc.Calls(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, map[string]uint64{args[0]: n})
		},
	},
	{
		Use:   "replay <op>",
		Short: "Replay history",
		Long:  "Prints the recorded input/output history of the named operation",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			calls, n, err := svc.Replay(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logReplayCmd(*cmd, args[0], calls, n)
		},
	},
}

// NewStashCmd returns stash command.
func NewStashCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "stash [store|get|calls|replay]",
		Short: "Stash management",
		Long:  "Stash management: store values, retrieve them by key, inspect operation history",
	}

	for i := range cmdStash {
		cmd.AddCommand(&cmdStash[i])
	}

	cmd.PersistentFlags().StringVarP(&As, "as", "a", "raw", "Output conversion: string, int, float or raw")

	return &cmd
}
