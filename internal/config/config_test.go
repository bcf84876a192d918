package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Coverage.Min != 70 || cfg.Coverage.Target != 80 {
		t.Errorf("coverage defaults: %+v", cfg.Coverage)
	}
	if cfg.Bundle.MaxChunkKB != 500 || cfg.Bundle.MaxTotalMB != 10 {
		t.Errorf("bundle defaults: %+v", cfg.Bundle)
	}
	if cfg.MaxFileSizeKB != 1024 {
		t.Errorf("file size default: %d", cfg.MaxFileSizeKB)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxFileSizeKB != Default().MaxFileSizeKB {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitguard.yml")
	data := "max_file_size_kb: 256\ncoverage:\n  min: 60\n  target: 75\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxFileSizeKB != 256 {
		t.Errorf("max_file_size_kb not overridden: %d", cfg.MaxFileSizeKB)
	}
	if cfg.Coverage.Min != 60 || cfg.Coverage.Target != 75 {
		t.Errorf("coverage not overridden: %+v", cfg.Coverage)
	}
	// Untouched fields keep their defaults.
	if len(cfg.ProtectedBranches) == 0 {
		t.Error("protected branches lost")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitguard.yml")
	if err := os.WriteFile(path, []byte("a: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("want parse error")
	}
}

func TestScannable(t *testing.T) {
	cfg := Default()
	tests := []struct {
		path string
		want bool
	}{
		{"app/page.tsx", true},
		{"lib/util.ts", true},
		{"package.json", true},
		{"node_modules/react/index.js", false},
		{".next/static/chunks/main.js", false},
		{"README.md", false},
		{"public/logo.png", false},
	}
	for _, tt := range tests {
		if got := cfg.Scannable(tt.path); got != tt.want {
			t.Errorf("Scannable(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsTestFile(t *testing.T) {
	cfg := Default()
	if !cfg.IsTestFile("lib/util.test.ts") {
		t.Error("test marker not detected")
	}
	if !cfg.IsTestFile("components/__tests__/Card.tsx") {
		t.Error("__tests__ dir not detected")
	}
	if cfg.IsTestFile("lib/util.ts") {
		t.Error("false positive")
	}
}
