package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
)

var conventionalHeader = regexp.MustCompile(
	`^(feat|fix|docs|style|refactor|test|chore|perf|ci|build|revert)(\(.+\))?!?: .{1,72}$`,
)

// CommitMessage validates the first line of a commit message against the
// conventional-commits shape. Merge and revert commits produced by git
// itself are exempt.
func CommitMessage(msg string) Result {
	const name = "commit-message"

	first, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	first = strings.TrimSpace(first)
	if first == "" {
		return result(name, model.Fail, []string{"empty commit message"})
	}
	if strings.HasPrefix(first, "Merge ") || strings.HasPrefix(first, "Revert ") {
		return pass(name)
	}
	if conventionalHeader.MatchString(first) {
		return pass(name)
	}
	return result(name, model.Fail, []string{
		fmt.Sprintf("commit message %q does not follow conventional commits", first),
		"expected: type(scope): subject, e.g. feat(listings): add pickup radius filter",
	})
}
