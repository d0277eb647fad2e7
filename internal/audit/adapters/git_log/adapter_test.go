package gitlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// commitFile writes content to a file and commits it, returning the hash.
func commitFile(t *testing.T, wt *git.Worktree, dir, name, content, msg string, when time.Time) plumbing.Hash {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("staging %s: %v", name, err)
	}
	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("committing %s: %v", msg, err)
	}
	return hash
}

func TestAdapter_Commits(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("initializing repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("opening worktree: %v", err)
	}

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := commitFile(t, wt, dir, "a.txt", "one", "base commit", when)
	mid := commitFile(t, wt, dir, "a.txt", "two", "second commit", when.Add(time.Minute))
	head := commitFile(t, wt, dir, "b.txt", "three", "third commit", when.Add(2*time.Minute))

	adapter := New(dir)
	task := domain.Task{
		BaseRef:   base.String(),
		HeadRef:   "HEAD",
		Owner:     "acme",
		Repo:      "widgets",
		AuthToken: "tok",
	}

	ids, err := adapter.Commits(context.Background(), task)
	if err != nil {
		t.Fatalf("Commits() error = %v", err)
	}

	want := []domain.CommitID{
		domain.CommitID(mid.String()),
		domain.CommitID(head.String()),
	}
	if len(ids) != len(want) {
		t.Fatalf("Commits() returned %d ids, want %d: %v", len(ids), len(want), ids)
	}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Commits()[%d] = %q, want %q (oldest first)", i, id, want[i])
		}
	}
}

func TestAdapter_Commits_SameRefs(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("initializing repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("opening worktree: %v", err)
	}

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := commitFile(t, wt, dir, "a.txt", "one", "only commit", when)

	adapter := New(dir)
	task := domain.Task{
		BaseRef:   base.String(),
		HeadRef:   base.String(),
		Owner:     "acme",
		Repo:      "widgets",
		AuthToken: "tok",
	}

	ids, err := adapter.Commits(context.Background(), task)
	if err != nil {
		t.Fatalf("Commits() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Commits() = %v, want empty for identical refs", ids)
	}
}

func TestAdapter_Commits_UnknownRef(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("initializing repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("opening worktree: %v", err)
	}
	commitFile(t, wt, dir, "a.txt", "one", "only commit", time.Now())

	adapter := New(dir)
	task := domain.Task{
		BaseRef:   "refs/heads/no-such-branch",
		HeadRef:   "HEAD",
		Owner:     "acme",
		Repo:      "widgets",
		AuthToken: "tok",
	}

	if _, err := adapter.Commits(context.Background(), task); err == nil {
		t.Fatal("Commits() error = nil, want error for unknown ref")
	}
}

func TestAdapter_Commits_MissingRepository(t *testing.T) {
	adapter := New(filepath.Join(t.TempDir(), "nope"))
	task := domain.Task{
		BaseRef:   "v1",
		HeadRef:   "v2",
		Owner:     "acme",
		Repo:      "widgets",
		AuthToken: "tok",
	}
	if _, err := adapter.Commits(context.Background(), task); err == nil {
		t.Fatal("Commits() error = nil, want error for missing repository")
	}
}
