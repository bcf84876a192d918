package checks

import (
	"strings"
	"testing"

	"github.com/Foodshareclub/commitguard/internal/model"
)

func TestCommitMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want model.Outcome
	}{
		{"feat", "feat: add pickup radius filter", model.Pass},
		{"fix_with_scope", "fix(listings): handle empty search results", model.Pass},
		{"breaking", "feat(api)!: drop v1 endpoints", model.Pass},
		{"chore_with_body", "chore: bump deps\n\nroutine updates", model.Pass},
		{"merge_commit", "Merge branch 'develop' into feature/map", model.Pass},
		{"revert_commit", `Revert "feat: add pickup radius filter"`, model.Pass},
		{"no_type", "added a new filter", model.Fail},
		{"unknown_type", "feature: add filter", model.Fail},
		{"no_space_after_colon", "feat:add filter", model.Fail},
		{"subject_too_long", "feat: " + strings.Repeat("x", 80), model.Fail},
		{"empty", "", model.Fail},
		{"whitespace_only", "   \n", model.Fail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CommitMessage(tt.msg)
			if res.Outcome != tt.want {
				t.Errorf("got %v, want %v (messages: %v)", res.Outcome, tt.want, res.Messages)
			}
		})
	}
}
