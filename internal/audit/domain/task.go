package domain

// CommitID is the opaque identifier of a single commit.
type CommitID string

// Task is one unit of work for the release gate: verify every commit
// introduced between BaseRef and HeadRef in the given repository.
type Task struct {
	BaseRef   string
	HeadRef   string
	Owner     string
	Repo      string
	AuthToken string
}

// Validate reports whether the task carries every required field. It runs
// before any network activity; a task that fails validation must never reach
// the pipeline.
func (t Task) Validate() error {
	if t.BaseRef == "" || t.HeadRef == "" || t.Owner == "" || t.Repo == "" || t.AuthToken == "" {
		return ErrMissingInputs
	}
	return nil
}
