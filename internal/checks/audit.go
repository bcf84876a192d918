package checks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/model"
)

type auditReport struct {
	Metadata struct {
		Vulnerabilities struct {
			Critical int `json:"critical"`
			High     int `json:"high"`
			Moderate int `json:"moderate"`
			Low      int `json:"low"`
		} `json:"vulnerabilities"`
	} `json:"metadata"`
}

// Audit runs npm audit and gates on the vulnerability counts it reports.
// npm exits non-zero when vulnerabilities exist, so the output is parsed
// before the exit code is considered.
func Audit(ctx context.Context, run gitio.Runner) Result {
	const name = "dependency-audit"

	out, runErr := run.Run(ctx, "npm", "audit", "--json")
	if out == "" && runErr != nil {
		return result(name, model.PassWithWarnings, []string{
			fmt.Sprintf("npm audit could not run: %v", runErr),
		})
	}

	var rep auditReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		return result(name, model.PassWithWarnings, []string{
			fmt.Sprintf("npm audit output not parseable: %v", err),
		})
	}

	v := rep.Metadata.Vulnerabilities
	switch {
	case v.Critical > 0 || v.High > 0:
		return result(name, model.Fail, []string{
			fmt.Sprintf("%d critical and %d high vulnerabilities in dependencies", v.Critical, v.High),
		})
	case v.Moderate > 0:
		return result(name, model.PassWithWarnings, []string{
			fmt.Sprintf("%d moderate vulnerabilities in dependencies", v.Moderate),
		})
	default:
		return pass(name)
	}
}
