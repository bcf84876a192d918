package gitio

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	out  string
	err  error
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.args = append([]string{name}, args...)
	return f.out, f.err
}

func TestStagedFiles(t *testing.T) {
	run := &fakeRunner{out: "app/page.tsx\nlib/util.ts\n\n"}
	files, err := NewClientWith(run).StagedFiles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0] != "app/page.tsx" || files[1] != "lib/util.ts" {
		t.Errorf("unexpected files: %v", files)
	}
	got := strings.Join(run.args, " ")
	want := "git diff --cached --name-only --diff-filter=ACM"
	if got != want {
		t.Errorf("ran %q, want %q", got, want)
	}
}

func TestStagedFilesEmpty(t *testing.T) {
	files, err := NewClientWith(&fakeRunner{out: "\n"}).StagedFiles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("want no files, got %v", files)
	}
}

func TestStagedFilesError(t *testing.T) {
	run := &fakeRunner{err: errors.New("not a git repository")}
	if _, err := NewClientWith(run).StagedFiles(context.Background()); err == nil {
		t.Error("want error")
	}
}

func TestCurrentBranch(t *testing.T) {
	branch, err := NewClientWith(&fakeRunner{out: "feature/map-view\n"}).CurrentBranch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if branch != "feature/map-view" {
		t.Errorf("got %q", branch)
	}
}

func TestCurrentBranchDetached(t *testing.T) {
	branch, err := NewClientWith(&fakeRunner{out: "\n"}).CurrentBranch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if branch != "" {
		t.Errorf("got %q, want empty", branch)
	}
}
