// Package ports defines the boundaries between the audit pipeline and its
// external collaborators.
package ports

import (
	"context"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// CommitSourcePort produces the ordered sequence of commit ids introduced
// between the task's base and head references. Order matters: the pipeline's
// result follows it. An empty sequence is valid.
type CommitSourcePort interface {
	Commits(ctx context.Context, task domain.Task) ([]domain.CommitID, error)
}

// PullRequestPort resolves the pull request that introduced a single commit,
// or nil when the hosting service reports no association.
type PullRequestPort interface {
	PullRequestForCommit(ctx context.Context, task domain.Task, commit domain.CommitID) (*domain.PullRequest, error)
}
