// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notion-alfred CLI, the script
// filter behind an Alfred workflow that searches Notion and appends tasks
// and notes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/notion-alfred/internal/config"
	"github.com/pdiddy/notion-alfred/internal/logging"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds plain-text credential files (notion-api-token).
const secretsDir = ".secrets/"

var (
	// appConfig is loaded once before any subcommand runs.
	appConfig types.WorkflowConfig

	// logger writes diagnostics to stderr. main replaces it with a warn-level
	// logger before setup runs, so config failures are reported too.
	logger = zap.NewNop()
)

// errUsage is returned when the root command gets fewer than two arguments.
var errUsage = errors.New("usage: notion-alfred <search|task|note> <data>")

// rootCmd is the base command. Invoked as "notion-alfred <action> <data>"
// it dispatches the action the same way the subcommands do, which is how
// the Alfred workflow calls it.
var rootCmd = &cobra.Command{
	Use:   "notion-alfred [action] [data]",
	Short: "Search Notion and append tasks and notes from Alfred",
	Long: `notion-alfred connects an Alfred workflow to a Notion workspace.

  notion-alfred search <query>   print matching pages as Alfred script-filter JSON
  notion-alfred task <title>     add a task to the task database
  notion-alfred note <title>     add a note to the note database

The API token is read from NOTION_API_TOKEN, the config file, or
.secrets/notion-api-token. Database ids come from TASK_DB_ID and NOTE_DB_ID.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDispatch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notion-alfred.yaml or ~/.config/notion-alfred/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().Int("workers", 0, "concurrent page lookups per search (default 4)")

	viper.BindPFlag(config.KeyWorkers, rootCmd.PersistentFlags().Lookup("workers"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	home, _ := os.UserHomeDir()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notion-alfred")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "notion-alfred"))
		}
	}

	if err := config.SetDefaults(viper.GetViper(), "notion-alfred/"+version, home); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		viper.Set(config.KeyLogLevel, "debug")
	}

	cfg, err := config.Load(viper.GetViper(), secretsDir)
	if err != nil {
		return err
	}
	log, err := logging.Stderr(cfg.LogLevel)
	if err != nil {
		return err
	}
	appConfig, logger = cfg, log
	return nil
}

func runDispatch(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	return runAction(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
}

// reportError logs a failed command. Nothing else reaches the launcher.
func reportError(log *zap.Logger, err error) {
	log.Error("command failed", zap.Error(err))
}

func main() {
	if log, err := logging.Stderr("warn"); err == nil {
		logger = log
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(logger, err)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
