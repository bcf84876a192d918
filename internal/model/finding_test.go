package model

import "testing"

func TestSeverityRank(t *testing.T) {
	order := []Severity{SevCritical, SevHigh, SevMedium, SevLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() <= order[i].Rank() {
			t.Errorf("%s should outrank %s", order[i-1], order[i])
		}
	}
	if Severity("INFO").Rank() != 0 {
		t.Error("unknown severity must rank below LOW")
	}
}

func TestTally(t *testing.T) {
	var tally Tally
	for _, s := range []Severity{SevCritical, SevHigh, SevHigh, SevMedium, SevLow, "bogus"} {
		tally.Add(s)
	}
	if tally.Critical != 1 || tally.High != 2 || tally.Medium != 1 || tally.Low != 1 {
		t.Errorf("unexpected tally: %+v", tally)
	}
	if tally.Total() != 5 {
		t.Errorf("total = %d, want 5", tally.Total())
	}
}

func TestOutcome(t *testing.T) {
	if Pass.ExitCode() != 0 || PassWithWarnings.ExitCode() != 0 || Fail.ExitCode() != 1 {
		t.Error("only Fail maps to a non-zero exit")
	}
	if Fail.String() != "fail" || PassWithWarnings.String() != "pass-with-warnings" {
		t.Error("unexpected outcome strings")
	}
}
