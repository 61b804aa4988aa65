// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notion-alfred/internal/workflow"
)

var noteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Add a note to the note database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		if err := runAction(cmd.Context(), cmd.OutOrStdout(), workflow.ActionNote, title); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Added note %q\n", title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
