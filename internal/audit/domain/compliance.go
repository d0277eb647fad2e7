package domain

// Compliant applies the release-gate rules to a resolved pull request.
// Rules are checked in order and short-circuit on the first failure:
//
//  1. the pull request is closed and merged
//  2. the title is non-empty
//  3. the body is non-empty
//
// Nothing else is checked: no reviewer counts, no CI status, no branch
// naming, no linked issues.
func Compliant(pr PullRequest) bool {
	if pr.State != StateClosed || !pr.Merged {
		return false
	}
	if pr.Title == "" {
		return false
	}
	if pr.Body == "" {
		return false
	}
	return true
}
