// Package report renders a validation result for human consumption.
package report

import (
	"fmt"
	"strings"

	"github.com/GitRealm/dagu-check-tickets/internal/audit/domain"
)

// Markdown produces a summary of the result: overall verdict, counts, and
// one table row per checked commit in enumeration order.
func Markdown(records []domain.ValidationRecord) string {
	compliant, violations, unlinked := domain.CountByVerdict(records)

	verdict := "pass"
	if !domain.AllCompliant(records) {
		verdict = "fail"
	}

	var sb strings.Builder
	sb.WriteString("## Ticket Check Report\n\n")
	fmt.Fprintf(&sb, "**Verdict:** %s\n\n", verdict)
	fmt.Fprintf(&sb, "Checked %d commit(s): %d compliant, %d non-compliant, %d unlinked\n",
		len(records), compliant, violations, unlinked)

	if len(records) == 0 {
		return sb.String()
	}

	sb.WriteString("\n| Commit | Pull Request | Compliant |\n")
	sb.WriteString("|--------|--------------|-----------|\n")
	for _, r := range records {
		pr := "(none)"
		if r.PRNumber != nil {
			pr = fmt.Sprintf("#%d", *r.PRNumber)
		}
		verdict := "no"
		if r.Compliant {
			verdict = "yes"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", r.Commit, pr, verdict)
	}

	return sb.String()
}
