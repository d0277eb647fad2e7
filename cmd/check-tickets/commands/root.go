// Package commands assembles the check-tickets CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GitRealm/dagu-check-tickets/internal/config"
	"github.com/GitRealm/dagu-check-tickets/internal/logging"

	"go.uber.org/zap"
)

// version is overridden at build time via -ldflags.
var version = "0.0.0-dev"

// NewRootCmd constructs the check-tickets root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check-tickets",
		Short:         "Release gate checking that commits between two refs ship through compliant pull requests",
		Long:          "check-tickets verifies that every commit introduced between a base and a head reference is linked to a merged pull request carrying a title and a description.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", os.Getenv("CHECK_TICKETS_CONFIG"), "path to TOML config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the check-tickets version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "check-tickets version %s\n", version)
		},
	})

	cmd.AddCommand(newWorkerCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// setup loads the config file named by --config and builds the logger.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, log, nil
}
