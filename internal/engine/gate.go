package engine

import "github.com/Foodshareclub/commitguard/internal/model"

// Aggregate concatenates per-file finding lists in their input order,
// followed by diff findings, and derives the severity tally. Ordering is
// deterministic so repeated runs over the same inputs produce identical
// reports.
func Aggregate(perFile [][]model.Finding, diff []model.Finding) ([]model.Finding, model.Tally) {
	var all []model.Finding
	for _, fs := range perFile {
		all = append(all, fs...)
	}
	all = append(all, diff...)

	var tally model.Tally
	for _, f := range all {
		tally.Add(f.Severity)
	}
	return all, tally
}

// Decide maps a complete tally onto the gate outcome. Critical and high
// findings block the commit; medium findings pass with warnings; anything
// else passes.
func Decide(t model.Tally) model.Outcome {
	if t.Critical > 0 || t.High > 0 {
		return model.Fail
	}
	if t.Medium > 0 {
		return model.PassWithWarnings
	}
	return model.Pass
}
