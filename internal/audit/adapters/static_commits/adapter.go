// Package staticcommits provides the reference commit source: a fixed pair
// of placeholder commit ids. Real enumeration lives behind the same port in
// the compare_commits and git_log adapters.
package staticcommits

import (
	"context"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// Adapter implements ports.CommitSourcePort with a fixed sequence.
type Adapter struct {
	ids []domain.CommitID
}

// New creates the stub commit source with its default placeholder pair.
func New() *Adapter {
	return &Adapter{ids: []domain.CommitID{"commit-sha-1", "commit-sha-2"}}
}

// NewWithCommits creates a stub returning the given sequence, mostly for
// tests and dry runs.
func NewWithCommits(ids ...domain.CommitID) *Adapter {
	return &Adapter{ids: ids}
}

// Commits returns the fixed sequence regardless of task coordinates.
func (a *Adapter) Commits(_ context.Context, _ domain.Task) ([]domain.CommitID, error) {
	out := make([]domain.CommitID, len(a.ids))
	copy(out, a.ids)
	return out, nil
}
