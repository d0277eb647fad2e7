// Package gitlog enumerates commits from a local clone instead of the
// hosting service, for gating runs next to a checkout.
package gitlog

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// Adapter implements ports.CommitSourcePort by walking the history of a
// local repository. Owner and repo on the task are ignored; the clone at
// repoPath is the source of truth.
type Adapter struct {
	repoPath string
}

// New creates a commit source reading from the repository at repoPath.
func New(repoPath string) *Adapter {
	return &Adapter{repoPath: repoPath}
}

// Commits returns the ids of commits reachable from the task's head
// reference but not from its base reference, oldest first.
func (a *Adapter) Commits(_ context.Context, task domain.Task) ([]domain.CommitID, error) {
	repo, err := git.PlainOpen(a.repoPath)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", a.repoPath, err)
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(task.BaseRef))
	if err != nil {
		return nil, fmt.Errorf("resolving base ref %s: %w", task.BaseRef, err)
	}
	headHash, err := repo.ResolveRevision(plumbing.Revision(task.HeadRef))
	if err != nil {
		return nil, fmt.Errorf("resolving head ref %s: %w", task.HeadRef, err)
	}

	// Build the set of commits reachable from base.
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := repo.Log(&git.LogOptions{From: *baseHash})
	if err != nil {
		return nil, fmt.Errorf("walking base history: %w", err)
	}
	err = baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking base history: %w", err)
	}

	headIter, err := repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, fmt.Errorf("walking head history: %w", err)
	}

	// Don't stop iteration on a seen commit: merge commits have multiple
	// parents and every path may still lead to new commits.
	var ids []domain.CommitID
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true
		ids = append(ids, domain.CommitID(c.Hash.String()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking head history: %w", err)
	}

	// The log walks newest first; the pipeline wants oldest first.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids, nil
}
