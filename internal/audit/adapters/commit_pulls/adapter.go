// Package commitpulls resolves the pull request that introduced a commit by
// querying the GitHub commit→pulls association endpoint.
package commitpulls

import (
	"context"
	"fmt"

	"github.com/google/go-github/v68/github"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// Adapter implements ports.PullRequestPort using the GitHub API. go-github
// sends the groot-preview media type the association endpoint requires.
type Adapter struct {
	client *github.Client
}

// New creates a new commit→pulls adapter.
func New(client *github.Client) *Adapter {
	return &Adapter{client: client}
}

// PullRequestForCommit returns the first pull request associated with the
// commit, or nil when the service reports none. When a commit has more than
// one association only the first in response order is used.
func (a *Adapter) PullRequestForCommit(
	ctx context.Context,
	task domain.Task,
	commit domain.CommitID,
) (*domain.PullRequest, error) {
	prs, _, err := a.client.PullRequests.ListPullRequestsWithCommit(
		ctx,
		task.Owner,
		task.Repo,
		string(commit),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests for commit %s: %w", commit, err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	first := prs[0]
	return &domain.PullRequest{
		Number: first.GetNumber(),
		Title:  first.GetTitle(),
		Body:   first.GetBody(),
		State:  domain.PullRequestState(first.GetState()),
		Merged: first.GetMerged(),
	}, nil
}
