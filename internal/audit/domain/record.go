package domain

// ValidationRecord is the per-commit outcome of a task. PRNumber is nil when
// no pull request is linked to the commit (including lookups that failed and
// were absorbed).
type ValidationRecord struct {
	Commit    CommitID
	PRNumber  *int
	Compliant bool
}

// NewRecord builds the record for a commit from its resolved pull request,
// or the unlinked record when pr is nil.
func NewRecord(commit CommitID, pr *PullRequest) ValidationRecord {
	if pr == nil {
		return ValidationRecord{Commit: commit, Compliant: false}
	}
	n := pr.Number
	return ValidationRecord{Commit: commit, PRNumber: &n, Compliant: Compliant(*pr)}
}

// CountByVerdict returns counts of records grouped by outcome: compliant,
// linked to a non-compliant pull request, and not linked to any pull request.
func CountByVerdict(records []ValidationRecord) (compliant, violations, unlinked int) {
	for _, r := range records {
		switch {
		case r.Compliant:
			compliant++
		case r.PRNumber != nil:
			violations++
		default:
			unlinked++
		}
	}
	return
}

// AllCompliant reports whether every record passed the gate. An empty result
// passes: zero commits means nothing to object to.
func AllCompliant(records []ValidationRecord) bool {
	for _, r := range records {
		if !r.Compliant {
			return false
		}
	}
	return true
}
