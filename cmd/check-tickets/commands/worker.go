package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GitRealm/dagu-check-tickets/internal/worker"
)

// newWorkerCmd runs the subordinate-worker protocol over stdin/stdout.
func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run as a subordinate worker reading task messages from stdin",
		Long: "worker reads newline-delimited JSON task messages from stdin and writes exactly one " +
			"terminal message to stdout per execute task. Messages with any other action are ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// The worker transport always runs the reference sequential path.
			w := worker.New(newPipeline(cfg, log, 1), log)
			return w.Run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
