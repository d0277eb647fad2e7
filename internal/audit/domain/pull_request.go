package domain

// PullRequestState is the lifecycle state reported by the hosting service.
type PullRequestState string

const (
	StateOpen   PullRequestState = "open"
	StateClosed PullRequestState = "closed"
)

// PullRequest holds the fields of a resolved pull request that the
// compliance rules read. Title and Body may be empty; the service reports
// absent values as empty strings.
type PullRequest struct {
	Number int
	Title  string
	Body   string
	State  PullRequestState
	Merged bool
}
