package engine

import (
	"fmt"

	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

// ScanFile evaluates every applicable file-scope rule against one staged
// file and returns its findings in catalog order. A file the store cannot
// produce content for yields no findings.
func ScanFile(cat *rules.Catalog, store *ContentStore, path string) []model.Finding {
	content, ok := store.Get(path)
	if !ok {
		return nil
	}

	var out []model.Finding
	for _, r := range cat.ForFile(path) {
		msg, n, hit := r.MatchContent(content)
		if !hit {
			continue
		}
		out = append(out, model.Finding{
			RuleID:   r.ID,
			Severity: r.Severity,
			File:     path,
			Message:  occurrenceMessage(msg, n, r.PerOccurrence),
			Category: r.Category,
		})
	}
	return out
}

func occurrenceMessage(msg string, n int, perOccurrence bool) string {
	if perOccurrence && n > 1 {
		return fmt.Sprintf("%s (%d occurrences)", msg, n)
	}
	return msg
}
