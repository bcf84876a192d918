package model

// Severity is the normalized severity of a finding. The order matters:
// CRITICAL > HIGH > MEDIUM > LOW.
type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
)

// Rank maps a severity onto the total order used for grouping and
// comparisons. Unknown values rank below LOW.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 4
	case SevHigh:
		return 3
	case SevMedium:
		return 2
	case SevLow:
		return 1
	default:
		return 0
	}
}

// DiffLocation is the sentinel file path for findings produced from the
// staged diff rather than a concrete file.
const DiffLocation = "diff"

// Finding is one reported match of a catalog rule. Severity is copied from
// the rule at evaluation time and never re-derived.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"` // path, or DiffLocation
	Message  string   `json:"message"`
	Category string   `json:"category,omitempty"` // OWASP tag, e.g. "A03:2021"
}

// Tally counts findings per severity. It is derived from a finding list and
// never mutated independently of one.
type Tally struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add increments the bucket for the given severity.
func (t *Tally) Add(s Severity) {
	switch s {
	case SevCritical:
		t.Critical++
	case SevHigh:
		t.High++
	case SevMedium:
		t.Medium++
	case SevLow:
		t.Low++
	}
}

// Total returns the number of counted findings.
func (t Tally) Total() int {
	return t.Critical + t.High + t.Medium + t.Low
}
