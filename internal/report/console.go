package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/engine"
	"github.com/Foodshareclub/commitguard/internal/model"
)

var severityOrder = []model.Severity{
	model.SevCritical,
	model.SevHigh,
	model.SevMedium,
	model.SevLow,
}

// Console renders the report grouped by severity, strictest first. Within
// one severity, findings keep their scan order.
func Console(w io.Writer, rep engine.Report) {
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "no findings")
		fmt.Fprintf(w, "decision: %s\n", rep.Decision)
		return
	}

	for _, sev := range severityOrder {
		var group []model.Finding
		for _, f := range rep.Findings {
			if f.Severity == sev {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d)\n", sev, len(group))
		for _, f := range group {
			if f.Category != "" {
				fmt.Fprintf(w, "  %s: %s [%s] (%s)\n", f.File, f.Message, f.Category, f.RuleID)
			} else {
				fmt.Fprintf(w, "  %s: %s (%s)\n", f.File, f.Message, f.RuleID)
			}
		}
	}

	t := rep.Tally
	fmt.Fprintf(w, "\n%d findings: %d critical, %d high, %d medium, %d low\n",
		t.Total(), t.Critical, t.High, t.Medium, t.Low)
	fmt.Fprintf(w, "decision: %s\n", rep.Decision)
}

// WriteJSON renders the report as indented JSON for machine consumers.
func WriteJSON(w io.Writer, rep engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// ConsoleChecks renders peripheral check results, quiet on passes.
func ConsoleChecks(w io.Writer, results []checks.Result) {
	for _, r := range results {
		if r.Outcome == model.Pass {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", r.Name, r.Decision)
		for _, m := range r.Messages {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
