package model

// Outcome is the gate decision for one invocation.
type Outcome int

const (
	// Pass means the commit may proceed with nothing to report beyond
	// informational findings.
	Pass Outcome = iota
	// PassWithWarnings means the commit may proceed but medium-severity
	// findings should be reviewed.
	PassWithWarnings
	// Fail means the commit must be blocked.
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case PassWithWarnings:
		return "pass-with-warnings"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome onto a process exit code. Only Fail is non-zero.
func (o Outcome) ExitCode() int {
	if o == Fail {
		return 1
	}
	return 0
}
