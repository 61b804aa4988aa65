// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notion-alfred/internal/workflow"
)

var taskCmd = &cobra.Command{
	Use:   "task <title>",
	Short: "Add a task to the task database",
	Long: `Task creates a page in the database named by TASK_DB_ID with status
"To Do" and medium priority.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		if err := runAction(cmd.Context(), cmd.OutOrStdout(), workflow.ActionTask, title); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Added task %q\n", title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
}
