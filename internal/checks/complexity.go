package checks

import (
	"fmt"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
)

const (
	maxFileLines     = 400
	maxFunctionLines = 60
	maxNestingDepth  = 5
)

// Complexity applies rough structural heuristics to one file: overall
// length, longest function and deepest brace nesting. It is advisory only
// and never blocks a commit on its own.
func Complexity(path, content string) Result {
	name := "complexity:" + path

	lines := strings.Split(content, "\n")
	var msgs []string
	if len(lines) > maxFileLines {
		msgs = append(msgs, fmt.Sprintf("%d lines, consider splitting (guideline %d)", len(lines), maxFileLines))
	}
	if longest := longestFunction(lines); longest > maxFunctionLines {
		msgs = append(msgs, fmt.Sprintf("longest function is %d lines (guideline %d)", longest, maxFunctionLines))
	}
	if depth := deepestNesting(content); depth > maxNestingDepth {
		msgs = append(msgs, fmt.Sprintf("brace nesting reaches depth %d (guideline %d)", depth, maxNestingDepth))
	}
	if len(msgs) == 0 {
		return pass(name)
	}
	return result(name, model.PassWithWarnings, msgs)
}

var functionStarts = []string{"function ", "=> {", "async function"}

func longestFunction(lines []string) int {
	longest, depth, start := 0, 0, -1
	for i, line := range lines {
		if start < 0 {
			for _, marker := range functionStarts {
				if strings.Contains(line, marker) {
					start, depth = i, 0
					break
				}
			}
		}
		if start < 0 {
			continue
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 && i > start {
			if n := i - start + 1; n > longest {
				longest = n
			}
			start = -1
		}
	}
	return longest
}

func deepestNesting(content string) int {
	depth, max := 0, 0
	for _, r := range content {
		switch r {
		case '{':
			depth++
			if depth > max {
				max = depth
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return max
}
