package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
)

type fakeGit struct {
	staged string
	diff   string
}

func (f fakeGit) Run(ctx context.Context, name string, args ...string) (string, error) {
	if strings.Contains(strings.Join(args, " "), "--name-only") {
		return f.staged, nil
	}
	return f.diff, nil
}

func testClient(staged, diff string) *gitio.Client {
	return gitio.NewClientWith(fakeGit{staged: staged, diff: diff})
}

func init() {
	logging.Logger = zap.NewNop().Sugar()
}

func TestScanTargetsExplicitFiles(t *testing.T) {
	git := testClient("staged.ts\n", "+staged change\n")
	args := []string{"app/page.tsx", "README.md", "node_modules/x.js"}

	files, diff := scanTargets(context.Background(), git, config.Default(), args)
	assert.Equal(t, []string{"app/page.tsx"}, files)
	assert.Equal(t, "+staged change\n", diff)
}

func TestScanTargetsFallsBackToStaged(t *testing.T) {
	git := testClient("app/page.tsx\n.next/static/x.js\nlib/util.ts\n", "+change\n")

	files, diff := scanTargets(context.Background(), git, config.Default(), nil)
	assert.Equal(t, []string{"app/page.tsx", "lib/util.ts"}, files)
	assert.Equal(t, "+change\n", diff)
}

func TestScanCommandsAcceptFileArgs(t *testing.T) {
	args := []string{"app/page.tsx", "lib/util.ts"}
	assert.NoError(t, securityCmd.Args(securityCmd, args))
	assert.NoError(t, preCommitCmd.Args(preCommitCmd, args))
	assert.NoError(t, securityCmd.Args(securityCmd, nil))
}

func TestLargeFilesMaxSizeFlag(t *testing.T) {
	flag := largeFilesCmd.Flags().Lookup("max-size")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "1024", flag.DefValue)
	}
}
