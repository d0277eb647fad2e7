package commands

import (
	"context"

	"go.uber.org/zap"

	commitpulls "github.com/GitRealm/dagu-check-tickets/internal/audit/adapters/commit_pulls"
	comparecommits "github.com/GitRealm/dagu-check-tickets/internal/audit/adapters/compare_commits"
	gitlog "github.com/GitRealm/dagu-check-tickets/internal/audit/adapters/git_log"
	staticcommits "github.com/GitRealm/dagu-check-tickets/internal/audit/adapters/static_commits"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/app"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/ports"
	"github.com/GitRealm/dagu-check-tickets/internal/config"
	"github.com/GitRealm/dagu-check-tickets/internal/githubclient"
	"github.com/GitRealm/dagu-check-tickets/internal/worker"
)

// newPipeline wires adapters for one configuration. The API client is built
// per task because every task carries its own auth token.
func newPipeline(cfg config.Config, log *zap.Logger, maxInFlight int) worker.PipelineFunc {
	return func(ctx context.Context, task domain.Task) ([]domain.ValidationRecord, error) {
		if err := task.Validate(); err != nil {
			return nil, err
		}

		client, err := githubclient.New(task.AuthToken, cfg.GitHubBaseURL, cfg.HTTPTimeout())
		if err != nil {
			return nil, err
		}

		var commits ports.CommitSourcePort
		switch cfg.Enumerator {
		case config.EnumeratorCompare:
			commits = comparecommits.New(client)
		case config.EnumeratorGit:
			commits = gitlog.New(cfg.RepoPath)
		default:
			commits = staticcommits.New()
		}

		var opts []app.Option
		if maxInFlight > 1 {
			opts = append(opts, app.WithMaxInFlight(maxInFlight))
		}

		svc := app.New(commits, commitpulls.New(client), log, opts...)
		return svc.Execute(ctx, task)
	}
}
