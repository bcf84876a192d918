package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Foodshareclub/commitguard/internal/engine"
	"github.com/Foodshareclub/commitguard/internal/model"
)

func sampleReport() engine.Report {
	findings := []model.Finding{
		{RuleID: "a11y.img-alt", Severity: model.SevLow, File: "components/Card.tsx", Message: "Image element without alt text"},
		{RuleID: "injection.sql", Severity: model.SevCritical, File: "lib/db.ts", Message: "SQL injection via raw query", Category: "A03:2021"},
		{RuleID: "hygiene.console", Severity: model.SevMedium, File: model.DiffLocation, Message: "console logging in added code"},
	}
	var tally model.Tally
	for _, f := range findings {
		tally.Add(f.Severity)
	}
	outcome := engine.Decide(tally)
	return engine.Report{Findings: findings, Tally: tally, Outcome: outcome, Decision: outcome.String()}
}

func TestConsoleGroupsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, sampleReport())
	out := buf.String()

	critical := strings.Index(out, "CRITICAL (1)")
	medium := strings.Index(out, "MEDIUM (1)")
	low := strings.Index(out, "LOW (1)")
	require.True(t, critical >= 0 && medium >= 0 && low >= 0, out)
	assert.Less(t, critical, medium)
	assert.Less(t, medium, low)
	assert.Contains(t, out, "decision: fail")
	assert.Contains(t, out, "[A03:2021]")
}

func TestConsoleEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, engine.Report{Decision: model.Pass.String()})
	assert.Contains(t, buf.String(), "no findings")
	assert.Contains(t, buf.String(), "decision: pass")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded engine.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Findings, 3)
	assert.Equal(t, "fail", decoded.Decision)
	assert.Equal(t, 1, decoded.Tally.Critical)
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleReport(), "0.1.0"))

	var log sarifLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &log))
	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	assert.Equal(t, "commitguard", log.Runs[0].Tool.Driver.Name)

	results := log.Runs[0].Results
	require.Len(t, results, 3)
	levels := map[string]string{}
	for _, r := range results {
		levels[r.RuleID] = r.Level
	}
	assert.Equal(t, "error", levels["injection.sql"])
	assert.Equal(t, "warning", levels["hygiene.console"])
	assert.Equal(t, "note", levels["a11y.img-alt"])
}

func TestSevToLevel(t *testing.T) {
	assert.Equal(t, "error", sevToLevel(model.SevCritical))
	assert.Equal(t, "error", sevToLevel(model.SevHigh))
	assert.Equal(t, "warning", sevToLevel(model.SevMedium))
	assert.Equal(t, "note", sevToLevel(model.SevLow))
}

func TestToURI(t *testing.T) {
	assert.Equal(t, "lib/db.ts", toURI("./lib/db.ts"))
	assert.Equal(t, "lib/db.ts", toURI("../../lib/db.ts"))
}
