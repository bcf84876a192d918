package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/model"
)

var protected = []string{"main", "master", "production", "develop"}

func TestProtectedBranch(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		allow  bool
		want   model.Outcome
	}{
		{"feature_branch", "feature/map-view", false, model.Pass},
		{"main_blocked", "main", false, model.Fail},
		{"production_blocked", "production", false, model.Fail},
		{"main_with_override", "main", true, model.PassWithWarnings},
		{"detached_head", "", false, model.Pass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProtectedBranch(tt.branch, protected, tt.allow)
			if res.Outcome != tt.want {
				t.Errorf("got %v, want %v", res.Outcome, tt.want)
			}
		})
	}
}

func TestLargeFiles(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.ts")
	big := filepath.Join(dir, "big.bin")
	os.WriteFile(small, []byte("ok"), 0o644)
	os.WriteFile(big, make([]byte, 3*1024), 0o644)

	res := LargeFiles([]string{small, big, filepath.Join(dir, "gone.ts")}, 2)
	if res.Outcome != model.Fail {
		t.Fatalf("got %v, want Fail", res.Outcome)
	}
	if len(res.Messages) != 1 {
		t.Fatalf("got %d messages, want 1: %v", len(res.Messages), res.Messages)
	}

	res = LargeFiles([]string{small}, 2)
	if res.Outcome != model.Pass {
		t.Errorf("got %v, want Pass", res.Outcome)
	}
}

func TestSensitivePaths(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  model.Outcome
	}{
		{"clean", []string{"app/page.tsx", ".env.example"}, model.Pass},
		{"env_file", []string{".env"}, model.Fail},
		{"env_local", []string{"apps/web/.env.local"}, model.Fail},
		{"node_modules", []string{"node_modules/lodash/index.js"}, model.Fail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SensitivePaths(tt.files)
			if res.Outcome != tt.want {
				t.Errorf("got %v, want %v (messages: %v)", res.Outcome, tt.want, res.Messages)
			}
		})
	}
}

func TestCoverage(t *testing.T) {
	dir := t.TempDir()
	write := func(pct string) string {
		path := filepath.Join(dir, "summary.json")
		os.WriteFile(path, []byte(`{"total":{"lines":{"pct":`+pct+`}}}`), 0o644)
		return path
	}
	cfg := config.Coverage{Min: 70, Target: 80}

	if res := Coverage(write("85.5"), cfg); res.Outcome != model.Pass {
		t.Errorf("above target: got %v", res.Outcome)
	}
	if res := Coverage(write("74"), cfg); res.Outcome != model.PassWithWarnings {
		t.Errorf("between min and target: got %v", res.Outcome)
	}
	if res := Coverage(write("42"), cfg); res.Outcome != model.Fail {
		t.Errorf("below min: got %v", res.Outcome)
	}
	if res := Coverage(filepath.Join(dir, "missing.json"), cfg); res.Outcome != model.PassWithWarnings {
		t.Errorf("missing summary: got %v", res.Outcome)
	}
}

func TestBundleSize(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "chunks"), 0o755)
	os.WriteFile(filepath.Join(dir, "chunks", "main.js"), make([]byte, 2*1024), 0o644)
	cfg := config.Bundle{MaxChunkKB: 1, MaxTotalMB: 10}

	res := BundleSize(dir, cfg)
	if res.Outcome != model.PassWithWarnings {
		t.Fatalf("oversized chunk: got %v (messages: %v)", res.Outcome, res.Messages)
	}

	res = BundleSize(dir, config.Bundle{MaxChunkKB: 4, MaxTotalMB: 10})
	if res.Outcome != model.Pass {
		t.Errorf("within limits: got %v", res.Outcome)
	}

	res = BundleSize(filepath.Join(dir, "not-built"), cfg)
	if res.Outcome != model.Pass {
		t.Errorf("no build dir: got %v", res.Outcome)
	}
}

func TestWorst(t *testing.T) {
	results := []Result{
		pass("a"),
		result("b", model.PassWithWarnings, nil),
		result("c", model.Fail, nil),
	}
	if Worst(results) != model.Fail {
		t.Error("want Fail")
	}
	if Worst(results[:2]) != model.PassWithWarnings {
		t.Error("want PassWithWarnings")
	}
	if Worst(nil) != model.Pass {
		t.Error("want Pass")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
