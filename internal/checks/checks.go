// Package checks holds the gate checks that do not fit the content-rule
// model: commit message shape, branch protection, file sizes, coverage,
// dependency audit and bundle weight.
package checks

import (
	"fmt"

	"github.com/Foodshareclub/commitguard/internal/model"
)

// Result is the outcome of one peripheral check.
type Result struct {
	Name     string        `json:"name"`
	Outcome  model.Outcome `json:"-"`
	Decision string        `json:"decision"`
	Messages []string      `json:"messages,omitempty"`
}

func pass(name string) Result {
	return Result{Name: name, Outcome: model.Pass, Decision: model.Pass.String()}
}

func result(name string, o model.Outcome, msgs []string) Result {
	return Result{Name: name, Outcome: o, Decision: o.String(), Messages: msgs}
}

// Worst folds a result list into the strictest outcome.
func Worst(results []Result) model.Outcome {
	worst := model.Pass
	for _, r := range results {
		if r.Outcome > worst {
			worst = r.Outcome
		}
	}
	return worst
}

// formatBytes renders a size for humans, binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTP"[exp])
}
