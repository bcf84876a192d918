package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/Foodshareclub/commitguard/internal/model"
)

type fakeRunner struct {
	out string
	err error
}

func (f fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return f.out, f.err
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want model.Outcome
	}{
		{
			"clean",
			`{"metadata":{"vulnerabilities":{"critical":0,"high":0,"moderate":0,"low":0}}}`,
			nil,
			model.Pass,
		},
		{
			"high_vulns_nonzero_exit",
			`{"metadata":{"vulnerabilities":{"critical":0,"high":2,"moderate":1,"low":4}}}`,
			errors.New("exit status 1"),
			model.Fail,
		},
		{
			"moderate_only",
			`{"metadata":{"vulnerabilities":{"critical":0,"high":0,"moderate":3,"low":0}}}`,
			errors.New("exit status 1"),
			model.PassWithWarnings,
		},
		{
			"npm_missing",
			"",
			errors.New("exec: npm: not found"),
			model.PassWithWarnings,
		},
		{
			"garbage_output",
			"not json",
			nil,
			model.PassWithWarnings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Audit(context.Background(), fakeRunner{out: tt.out, err: tt.err})
			if res.Outcome != tt.want {
				t.Errorf("got %v, want %v (messages: %v)", res.Outcome, tt.want, res.Messages)
			}
		})
	}
}
