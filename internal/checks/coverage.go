package checks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/model"
)

// coverageSummary is the shape of jest's coverage-summary.json, reduced to
// the totals the gate reads.
type coverageSummary struct {
	Total struct {
		Lines      coverageMetric `json:"lines"`
		Statements coverageMetric `json:"statements"`
		Branches   coverageMetric `json:"branches"`
		Functions  coverageMetric `json:"functions"`
	} `json:"total"`
}

type coverageMetric struct {
	Pct float64 `json:"pct"`
}

// Coverage reads a jest coverage summary and gates on line coverage. A
// missing summary file passes with a warning so the hook stays usable
// before the first test run.
func Coverage(path string, cfg config.Coverage) Result {
	const name = "coverage"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result(name, model.PassWithWarnings, []string{
				fmt.Sprintf("no coverage summary at %s, run the test suite with coverage first", path),
			})
		}
		return result(name, model.Fail, []string{fmt.Sprintf("read %s: %v", path, err)})
	}

	var sum coverageSummary
	if err := json.Unmarshal(data, &sum); err != nil {
		return result(name, model.Fail, []string{fmt.Sprintf("parse %s: %v", path, err)})
	}

	pct := sum.Total.Lines.Pct
	switch {
	case pct < cfg.Min:
		return result(name, model.Fail, []string{
			fmt.Sprintf("line coverage %.1f%% is below the %.0f%% minimum", pct, cfg.Min),
		})
	case pct < cfg.Target:
		return result(name, model.PassWithWarnings, []string{
			fmt.Sprintf("line coverage %.1f%% is below the %.0f%% target", pct, cfg.Target),
		})
	default:
		return pass(name)
	}
}
