// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notion-alfred/internal/workflow"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Notion pages and print Alfred script-filter JSON",
	Long: `Search sends the query to the Notion search API (10 results, oldest edit
first), looks up the title and emoji icon of every hit, and prints the
result as an Alfred script-filter item list on stdout. Nothing is printed
if any lookup fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd.Context(), cmd.OutOrStdout(), workflow.ActionSearch, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
