// Package comparecommits enumerates the commits introduced between two
// references using the GitHub compare API.
package comparecommits

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// Adapter implements ports.CommitSourcePort by querying
// GET /repos/{owner}/{repo}/compare/{base}...{head}.
type Adapter struct {
	client *github.Client
}

// New creates a new compare-API commit source.
func New(client *github.Client) *Adapter {
	return &Adapter{client: client}
}

// Commits returns the commit ids reachable from head but not from base, in
// the oldest-first order the compare endpoint reports them.
func (a *Adapter) Commits(ctx context.Context, task domain.Task) ([]domain.CommitID, error) {
	var ids []domain.CommitID
	opts := &github.ListOptions{
		PerPage: 100,
	}

	for {
		comparison, resp, err := a.client.Repositories.CompareCommits(
			ctx,
			task.Owner,
			task.Repo,
			task.BaseRef,
			task.HeadRef,
			opts,
		)
		if err != nil {
			return nil, fmt.Errorf("comparing %s...%s: %w", task.BaseRef, task.HeadRef, err)
		}

		for _, commit := range comparison.Commits {
			ids = append(ids, domain.CommitID(commit.GetSHA()))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return ids, nil
}
