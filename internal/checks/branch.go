package checks

import (
	"fmt"

	"github.com/Foodshareclub/commitguard/internal/model"
)

// ProtectedBranch blocks direct commits to protected branches. allow is
// the explicit escape hatch for release automation.
func ProtectedBranch(branch string, protected []string, allow bool) Result {
	const name = "protected-branch"

	if branch == "" {
		// Detached HEAD, rebases and the like. Nothing to protect.
		return pass(name)
	}
	for _, p := range protected {
		if branch == p {
			if allow {
				return result(name, model.PassWithWarnings, []string{
					fmt.Sprintf("committing directly to protected branch %s (override active)", branch),
				})
			}
			return result(name, model.Fail, []string{
				fmt.Sprintf("direct commits to %s are blocked, open a pull request instead", branch),
			})
		}
	}
	return pass(name)
}
