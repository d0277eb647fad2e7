package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GitRealm/dagu-check-tickets/cmd/check-tickets/internal/clierr"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/report"
	"github.com/GitRealm/dagu-check-tickets/internal/githubauth"
	"github.com/GitRealm/dagu-check-tickets/internal/worker"
)

// taskDocument is the YAML shape accepted by --task-file.
type taskDocument struct {
	BaseRef     string `yaml:"baseRef"`
	HeadRef     string `yaml:"headRef"`
	Owner       string `yaml:"owner"`
	Repo        string `yaml:"repo"`
	GitHubToken string `yaml:"githubToken"`
}

// newCheckCmd runs one task without a parent process.
func newCheckCmd() *cobra.Command {
	var (
		base        string
		head        string
		owner       string
		repo        string
		token       string
		taskFile    string
		format      string
		maxInFlight int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one release-gate check and print the result",
		Long: "check runs the pipeline once for the given refs and repository. The exit code is 0 when " +
			"every commit is compliant, 1 when any is not, and 2 when the check could not complete.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return clierr.Wrap(2, "loading configuration", err)
			}
			defer func() { _ = log.Sync() }()

			task := domain.Task{
				BaseRef:   base,
				HeadRef:   head,
				Owner:     owner,
				Repo:      repo,
				AuthToken: token,
			}

			if taskFile != "" {
				data, err := os.ReadFile(taskFile)
				if err != nil {
					return clierr.Wrap(2, "reading task file", err)
				}
				var doc taskDocument
				if err := yaml.Unmarshal(data, &doc); err != nil {
					return clierr.Wrap(2, "parsing task file", err)
				}
				task = domain.Task{
					BaseRef:   doc.BaseRef,
					HeadRef:   doc.HeadRef,
					Owner:     doc.Owner,
					Repo:      doc.Repo,
					AuthToken: doc.GitHubToken,
				}
				if task.AuthToken == "" {
					task.AuthToken = token
				}
			}

			if task.AuthToken == "" {
				task.AuthToken = os.Getenv("GITHUB_TOKEN")
			}
			if task.AuthToken == "" && cfg.GitHubApp.AppID != 0 {
				minted, err := githubauth.InstallationToken(
					cmd.Context(),
					cfg.GitHubApp.AppID,
					cfg.GitHubApp.InstallationID,
					cfg.GitHubApp.PrivateKeyPath,
				)
				if err != nil {
					return clierr.Wrap(2, "authenticating as GitHub App", err)
				}
				task.AuthToken = minted
			}

			run := newPipeline(cfg, log, maxInFlight)
			records, err := run(cmd.Context(), task)
			if err != nil {
				return clierr.Wrap(2, "check failed", err)
			}

			switch format {
			case "markdown":
				fmt.Fprint(cmd.OutOrStdout(), report.Markdown(records))
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(worker.NewResultMessage(records)); err != nil {
					return clierr.Wrap(2, "encoding result", err)
				}
			default:
				return clierr.New(2, fmt.Sprintf("unknown format %q (want json or markdown)", format))
			}

			if !domain.AllCompliant(records) {
				return clierr.New(1, "one or more commits are not linked to a compliant pull request")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base reference")
	cmd.Flags().StringVar(&head, "head", "", "head reference")
	cmd.Flags().StringVar(&owner, "owner", "", "repository owner")
	cmd.Flags().StringVar(&repo, "repo", "", "repository name")
	cmd.Flags().StringVar(&token, "github-token", "", "GitHub token (or use GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&taskFile, "task-file", "", "read the task from a YAML file instead of flags")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or markdown")
	cmd.Flags().IntVar(&maxInFlight, "max-in-flight", 1, "max concurrent pull request lookups (1 = reference sequential behavior)")

	return cmd
}
