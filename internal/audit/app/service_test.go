package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// fakeCommitSource returns a fixed sequence or error.
type fakeCommitSource struct {
	ids   []domain.CommitID
	err   error
	calls int
}

func (f *fakeCommitSource) Commits(ctx context.Context, task domain.Task) ([]domain.CommitID, error) {
	f.calls++
	return f.ids, f.err
}

// fakePullSource maps commits to pull requests or lookup errors.
type fakePullSource struct {
	mu    sync.Mutex
	prs   map[domain.CommitID]*domain.PullRequest
	errs  map[domain.CommitID]error
	calls []domain.CommitID
}

func (f *fakePullSource) PullRequestForCommit(ctx context.Context, task domain.Task, commit domain.CommitID) (*domain.PullRequest, error) {
	f.mu.Lock()
	f.calls = append(f.calls, commit)
	f.mu.Unlock()
	if err, ok := f.errs[commit]; ok {
		return nil, err
	}
	return f.prs[commit], nil
}

func validTask() domain.Task {
	return domain.Task{
		BaseRef:   "v1",
		HeadRef:   "v2",
		Owner:     "acme",
		Repo:      "widgets",
		AuthToken: "tok",
	}
}

func TestService_Execute(t *testing.T) {
	commits := &fakeCommitSource{ids: []domain.CommitID{"c1", "c2"}}
	pulls := &fakePullSource{
		prs: map[domain.CommitID]*domain.PullRequest{
			"c1": {Number: 10, State: domain.StateClosed, Merged: true, Title: "Fix", Body: "Details"},
		},
	}

	svc := New(commits, pulls, zap.NewNop())
	records, err := svc.Execute(context.Background(), validTask())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.CommitID("c1"), records[0].Commit)
	require.NotNil(t, records[0].PRNumber)
	assert.Equal(t, 10, *records[0].PRNumber)
	assert.True(t, records[0].Compliant)

	assert.Equal(t, domain.CommitID("c2"), records[1].Commit)
	assert.Nil(t, records[1].PRNumber)
	assert.False(t, records[1].Compliant)
}

func TestService_Execute_MissingInputs(t *testing.T) {
	commits := &fakeCommitSource{ids: []domain.CommitID{"c1"}}
	pulls := &fakePullSource{}
	svc := New(commits, pulls, zap.NewNop())

	task := validTask()
	task.Owner = ""

	_, err := svc.Execute(context.Background(), task)
	require.ErrorIs(t, err, domain.ErrMissingInputs)
	assert.EqualError(t, err, "Missing required inputs: baseRef, headRef, owner, repo, or githubToken")

	// Validation fails before anything touches the network.
	assert.Zero(t, commits.calls)
	assert.Empty(t, pulls.calls)
}

func TestService_Execute_EmptyEnumeration(t *testing.T) {
	commits := &fakeCommitSource{}
	pulls := &fakePullSource{}
	svc := New(commits, pulls, zap.NewNop())

	records, err := svc.Execute(context.Background(), validTask())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, pulls.calls)
}

func TestService_Execute_EnumerationFailureAborts(t *testing.T) {
	commits := &fakeCommitSource{err: errors.New("ref not found")}
	pulls := &fakePullSource{}
	svc := New(commits, pulls, zap.NewNop())

	_, err := svc.Execute(context.Background(), validTask())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerating commits")
	assert.Empty(t, pulls.calls)
}

func TestService_Execute_LookupFailureIsAbsorbed(t *testing.T) {
	commits := &fakeCommitSource{ids: []domain.CommitID{"c1", "c2", "c3"}}
	pulls := &fakePullSource{
		prs: map[domain.CommitID]*domain.PullRequest{
			"c1": {Number: 10, State: domain.StateClosed, Merged: true, Title: "Fix", Body: "Details"},
			"c3": {Number: 12, State: domain.StateClosed, Merged: true, Title: "Add", Body: "More"},
		},
		errs: map[domain.CommitID]error{
			"c2": errors.New("502 bad gateway"),
		},
	}

	svc := New(commits, pulls, zap.NewNop())
	records, err := svc.Execute(context.Background(), validTask())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// The failed lookup becomes an unlinked record; later commits still run.
	assert.Nil(t, records[1].PRNumber)
	assert.False(t, records[1].Compliant)
	assert.True(t, records[2].Compliant)
}

func TestService_Execute_OrderFollowsEnumeration(t *testing.T) {
	var ids []domain.CommitID
	prs := make(map[domain.CommitID]*domain.PullRequest)
	for i := 0; i < 20; i++ {
		id := domain.CommitID(fmt.Sprintf("c%02d", i))
		ids = append(ids, id)
		prs[id] = &domain.PullRequest{Number: 100 + i, State: domain.StateClosed, Merged: true, Title: "t", Body: "b"}
	}

	commits := &fakeCommitSource{ids: ids}
	pulls := &fakePullSource{prs: prs}

	svc := New(commits, pulls, zap.NewNop())
	records, err := svc.Execute(context.Background(), validTask())
	require.NoError(t, err)
	require.Len(t, records, len(ids))
	for i, r := range records {
		assert.Equal(t, ids[i], r.Commit)
	}

	// Sequential default resolves in enumeration order too.
	assert.Equal(t, ids, pulls.calls)
}

func TestService_Execute_ConcurrentVariantPreservesOrder(t *testing.T) {
	var ids []domain.CommitID
	prs := make(map[domain.CommitID]*domain.PullRequest)
	for i := 0; i < 50; i++ {
		id := domain.CommitID(fmt.Sprintf("c%02d", i))
		ids = append(ids, id)
		prs[id] = &domain.PullRequest{Number: 200 + i, State: domain.StateClosed, Merged: true, Title: "t", Body: "b"}
	}

	commits := &fakeCommitSource{ids: ids}
	pulls := &fakePullSource{prs: prs}

	svc := New(commits, pulls, zap.NewNop(), WithMaxInFlight(8))
	records, err := svc.Execute(context.Background(), validTask())
	require.NoError(t, err)
	require.Len(t, records, len(ids))
	for i, r := range records {
		assert.Equal(t, ids[i], r.Commit)
		require.NotNil(t, r.PRNumber)
		assert.Equal(t, 200+i, *r.PRNumber)
	}
}
