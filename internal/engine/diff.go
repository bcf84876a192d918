package engine

import (
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

// AddedLines extracts the added lines of a unified diff, stripped of their
// "+" prefix. "+++" file headers are not added lines and are skipped.
func AddedLines(diff string) []string {
	var out []string
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		out = append(out, line[1:])
	}
	return out
}

// ScanDiff evaluates every diff-scope rule against the added lines of the
// staged diff. Each rule reports at most one finding per invocation; rules
// marked per-occurrence fold the matching line count into the message.
func ScanDiff(cat *rules.Catalog, diff string) []model.Finding {
	lines := AddedLines(diff)
	if len(lines) == 0 {
		return nil
	}

	var out []model.Finding
	for _, r := range cat.DiffRules() {
		msg := ""
		count := 0
		for _, line := range lines {
			m, hit := r.MatchLine(line)
			if !hit {
				continue
			}
			if count == 0 {
				msg = m
			}
			count++
			if !r.PerOccurrence {
				break
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, model.Finding{
			RuleID:   r.ID,
			Severity: r.Severity,
			File:     model.DiffLocation,
			Message:  occurrenceMessage(msg, count, r.PerOccurrence),
			Category: r.Category,
		})
	}
	return out
}
