// Copyright (c) Stashlab
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/stashlab/stash/store"
)

var (
	// As selects the output conversion of the get command.
	As string = "raw"
	// RawOutput raw output mode.
	RawOutput bool = false
)

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logCreatedCmd(cmd cobra.Command, e string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), e)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), color.BlueString("\ncreated: %s\n\n"), e)
	}
}

func logGetCmd(cmd cobra.Command, v interface{}, ok bool, err error) {
	if err != nil {
		logErrorCmd(cmd, err)
		return
	}
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nnot found\n\n"))
		return
	}

	logJSONCmd(cmd, map[string]interface{}{"value": v})
}

func logReplayCmd(cmd cobra.Command, op string, calls []store.Call, n uint64) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s was called %d times:\n", op, n)
	for _, c := range calls {
		fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) -> %s\n", op, c.Input, c.Output)
	}
}
