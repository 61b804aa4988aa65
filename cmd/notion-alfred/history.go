// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notion-alfred/internal/journal"
	"github.com/pdiddy/notion-alfred/internal/launcher"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List tasks and notes created from Alfred",
	Long: `History reads the local journal of records created by the task and
note actions and prints them, newest first, as Alfred script-filter JSON.
Use --export to dump the whole journal as YAML instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		export, _ := cmd.Flags().GetBool("export")
		return runHistory(cmd, appConfig, cmd.OutOrStdout(), limit, export)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to list")
	historyCmd.Flags().Bool("export", false, "write the whole journal as YAML")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, cfg types.WorkflowConfig, out io.Writer, limit int, export bool) error {
	if cfg.JournalPath == "" {
		return fmt.Errorf("journal disabled: set journal_path in the config file")
	}
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	if export {
		return j.ExportYAML(cmd.Context(), out)
	}

	entries, err := j.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return launcher.WriteJSON(out, launcher.Format(journal.Index(entries)))
}
