package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
)

var (
	deepRelative   = regexp.MustCompile(`from\s+['"](?:\.\./){3,}`)
	aliasImport    = regexp.MustCompile(`from\s+['"]@/`)
	relativeImport = regexp.MustCompile(`from\s+['"]\.\./`)
)

// Imports checks one file's import hygiene: deep relative paths that break
// on any move, and mixing the @/ alias with ../ paths in the same file.
func Imports(path, content string) Result {
	name := "imports:" + path

	var msgs []string
	if n := len(deepRelative.FindAllString(content, -1)); n > 0 {
		msgs = append(msgs, fmt.Sprintf("%d deep relative imports (../../..), use the @/ alias", n))
	}
	if aliasImport.MatchString(content) && relativeImport.MatchString(content) {
		msgs = append(msgs, "mixes @/ alias and relative parent imports")
	}
	if strings.Contains(content, `from "src/`) || strings.Contains(content, `from 'src/`) {
		msgs = append(msgs, "imports from a bare src/ path, use the @/ alias")
	}
	if len(msgs) == 0 {
		return pass(name)
	}
	return result(name, model.PassWithWarnings, msgs)
}
