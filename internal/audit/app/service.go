// Package app orchestrates the release-gate pipeline: enumerate commits,
// resolve the owning pull request for each, and apply the compliance rules.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
	"github.com/GitRealm/dagu-check-tickets/internal/audit/ports"
)

// Service runs one task through the pipeline and returns the ordered
// validation records.
type Service struct {
	commits     ports.CommitSourcePort
	pulls       ports.PullRequestPort
	log         *zap.Logger
	maxInFlight int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxInFlight bounds how many pull-request lookups may run at once.
// Result order still follows enumeration order. Values below 2 keep the
// default sequential behavior.
func WithMaxInFlight(n int) Option {
	return func(s *Service) {
		if n > 1 {
			s.maxInFlight = n
		}
	}
}

// New creates the pipeline service. The default configuration processes
// commits strictly one at a time.
func New(commits ports.CommitSourcePort, pulls ports.PullRequestPort, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		commits:     commits,
		pulls:       pulls,
		log:         log,
		maxInFlight: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute validates the task and runs the pipeline over every enumerated
// commit. It returns either the full ordered result or an error, never a
// partial result. Enumeration failures abort the task; per-commit lookup
// failures do not (see resolve).
func (s *Service) Execute(ctx context.Context, task domain.Task) ([]domain.ValidationRecord, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	ids, err := s.commits.Commits(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("enumerating commits %s..%s: %w", task.BaseRef, task.HeadRef, err)
	}

	s.log.Info("task accepted",
		zap.String("owner", task.Owner),
		zap.String("repo", task.Repo),
		zap.String("base", task.BaseRef),
		zap.String("head", task.HeadRef),
		zap.Int("commits", len(ids)),
	)

	records := make([]domain.ValidationRecord, len(ids))
	if s.maxInFlight > 1 {
		s.resolveAll(ctx, task, ids, records)
	} else {
		for i, id := range ids {
			records[i] = s.resolve(ctx, task, id)
		}
	}

	compliant, violations, unlinked := domain.CountByVerdict(records)
	s.log.Info("task finished",
		zap.Int("compliant", compliant),
		zap.Int("violations", violations),
		zap.Int("unlinked", unlinked),
	)

	return records, nil
}

// resolve looks up the pull request for one commit and applies the
// compliance rules. Lookup failures are absorbed: the commit is recorded as
// unlinked and the underlying error only surfaces in the debug log, so a
// transport failure is indistinguishable from a commit with no pull request.
func (s *Service) resolve(ctx context.Context, task domain.Task, commit domain.CommitID) domain.ValidationRecord {
	pr, err := s.pulls.PullRequestForCommit(ctx, task, commit)
	if err != nil {
		s.log.Debug("pull request lookup failed, recording commit as unlinked",
			zap.String("commit", string(commit)),
			zap.Error(err),
		)
		pr = nil
	}

	record := domain.NewRecord(commit, pr)
	s.log.Debug("commit checked",
		zap.String("commit", string(commit)),
		zap.Bool("compliant", record.Compliant),
	)
	return record
}

// resolveAll is the bounded-concurrency variant. Each commit writes its own
// slot, so records keeps enumeration order regardless of completion order.
func (s *Service) resolveAll(ctx context.Context, task domain.Task, ids []domain.CommitID, records []domain.ValidationRecord) {
	sem := make(chan struct{}, s.maxInFlight)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id domain.CommitID) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = s.resolve(ctx, task, id)
		}(i, id)
	}

	wg.Wait()
}
