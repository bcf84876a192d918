package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

const sampleDiff = `diff --git a/lib/tools.ts b/lib/tools.ts
--- a/lib/tools.ts
+++ b/lib/tools.ts
@@ -1,4 +1,6 @@
 const a = 1
-const removed = true
+const added = true
+debugger
 const b = 2
`

func TestAddedLines(t *testing.T) {
	lines := AddedLines(sampleDiff)
	assert.Equal(t, []string{"const added = true", "debugger"}, lines)
}

func TestAddedLinesHeaderNotAnAddedLine(t *testing.T) {
	for _, line := range AddedLines(sampleDiff) {
		assert.False(t, strings.HasPrefix(line, "++"), line)
	}
}

func TestAddedLinesEmptyDiff(t *testing.T) {
	assert.Empty(t, AddedLines(""))
}

func diffCatalog(t *testing.T) *rules.Catalog {
	t.Helper()
	cat, err := rules.NewCatalog([]rules.Rule{
		{
			ID:       "test.debugger",
			Scope:    rules.ScopeDiff,
			Severity: model.SevHigh,
			Excludes: []string{"//"},
			Alternatives: []rules.Alternative{
				{Pattern: `\bdebugger\b`, Message: "debugger statement"},
			},
		},
		{
			ID:            "test.console",
			Scope:         rules.ScopeDiff,
			Severity:      model.SevMedium,
			PerOccurrence: true,
			Alternatives: []rules.Alternative{
				{Pattern: `console\.log`, Message: "console logging"},
			},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestScanDiffOneFindingPerRule(t *testing.T) {
	cat := diffCatalog(t)
	diff := "+debugger\n+debugger\n+// debugger in comment\n"

	findings := ScanDiff(cat, diff)
	require.Len(t, findings, 1)
	assert.Equal(t, "test.debugger", findings[0].RuleID)
	assert.Equal(t, model.DiffLocation, findings[0].File)
	assert.Equal(t, model.SevHigh, findings[0].Severity)
}

func TestScanDiffPerOccurrenceCountsLines(t *testing.T) {
	cat := diffCatalog(t)
	diff := "+console.log(1)\n+console.log(2)\n+console.log(3)\n"

	findings := ScanDiff(cat, diff)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "3 occurrences")
}

func TestScanDiffNoAddedLines(t *testing.T) {
	cat := diffCatalog(t)
	assert.Empty(t, ScanDiff(cat, "-removed line\n context\n"))
}

func TestScanDiffHeaderTextNeverMatches(t *testing.T) {
	// A renamed or added file can put rule-matching text into the "+++"
	// header itself. The header is not an added line and must not fire
	// anything, here "debugger" would match test.debugger if it did.
	cat := diffCatalog(t)
	assert.Empty(t, ScanDiff(cat, "+++ b/debugger\n"))
	assert.Empty(t, ScanDiff(cat, "+++ b/console.log.ts\n"))

	full, err := rules.Default()
	require.NoError(t, err)
	assert.Empty(t, ScanDiff(full, "+++ b/debugger\n"))
}
