package staticcommits

import (
	"context"
	"testing"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

func TestAdapter_Commits(t *testing.T) {
	ids, err := New().Commits(context.Background(), domain.Task{})
	if err != nil {
		t.Fatalf("Commits() error = %v", err)
	}

	want := []domain.CommitID{"commit-sha-1", "commit-sha-2"}
	if len(ids) != len(want) {
		t.Fatalf("Commits() returned %d ids, want %d", len(ids), len(want))
	}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Commits()[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestAdapter_Commits_CustomSequence(t *testing.T) {
	adapter := NewWithCommits("c1", "c2", "c3")

	ids, err := adapter.Commits(context.Background(), domain.Task{})
	if err != nil {
		t.Fatalf("Commits() error = %v", err)
	}
	if len(ids) != 3 || ids[0] != "c1" || ids[2] != "c3" {
		t.Errorf("Commits() = %v, want [c1 c2 c3]", ids)
	}

	// Callers must not be able to mutate the adapter's sequence.
	ids[0] = "mutated"
	again, _ := adapter.Commits(context.Background(), domain.Task{})
	if again[0] != "c1" {
		t.Errorf("Commits() sequence mutated through returned slice")
	}
}

func TestAdapter_Commits_Empty(t *testing.T) {
	ids, err := NewWithCommits().Commits(context.Background(), domain.Task{})
	if err != nil {
		t.Fatalf("Commits() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Commits() = %v, want empty", ids)
	}
}
