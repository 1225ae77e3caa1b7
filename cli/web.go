// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdWeb = []cobra.Command{
	{
		Use:   "page <url>",
		Short: "Fetch page",
		Long:  "Fetches the page at <url>, serving a cached copy when one is still fresh",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			body, err := webSvc.Page(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), body)
		},
	},
	{
		Use:   "visits <url>",
		Short: "Visit count",
		Long:  "Prints how many times the page at <url> was requested",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			n, err := webSvc.Visits(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, map[string]uint64{args[0]: n})
		},
	},
}

// NewWebCmd returns web cache command.
func NewWebCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "web [page|visits]",
		Short: "Web cache",
		Long:  "Web cache: fetch pages through the cache and inspect visit counters",
	}

	for i := range cmdWeb {
		cmd.AddCommand(&cmdWeb[i])
	}

	return &cmd
}
