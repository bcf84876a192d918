package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/engine"
	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

const version = "0.1.0"

var debugMode bool

var rootCmd = &cobra.Command{
	Use:   "commitguard",
	Short: "commitguard - pre-commit security and quality gate",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
}

// newEngine builds the scan engine over the built-in catalog. A malformed
// built-in pattern is a programming error and aborts immediately.
func newEngine() *engine.Engine {
	cat, err := rules.Default()
	if err != nil {
		logging.Logger.Errorw("rule catalog failed to compile", "error", err)
		os.Exit(1)
	}
	return engine.New(cat, logging.Logger)
}

func loadConfig() config.Config {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		logging.Logger.Warnw("config override ignored", "error", err)
	}
	return cfg
}

// stagedInput gathers the staged file list and diff. Outside a repository,
// or when git itself fails, the gate has nothing to scan and both come
// back empty; an empty scan passes.
func stagedInput(ctx context.Context, git *gitio.Client, cfg config.Config) ([]string, string) {
	files, err := git.StagedFiles(ctx)
	if err != nil {
		logging.Logger.Warnw("could not list staged files", "error", err)
		files = nil
	}
	diff, err := git.StagedDiff(ctx)
	if err != nil {
		logging.Logger.Warnw("could not read staged diff", "error", err)
		diff = ""
	}
	return scannablePaths(cfg, files), diff
}

// scanTargets resolves what a scan subcommand should look at: the explicit
// paths given on the command line, or the staged files when none were. The
// staged diff is scanned either way.
func scanTargets(ctx context.Context, git *gitio.Client, cfg config.Config, args []string) ([]string, string) {
	if len(args) == 0 {
		return stagedInput(ctx, git, cfg)
	}
	diff, err := git.StagedDiff(ctx)
	if err != nil {
		logging.Logger.Warnw("could not read staged diff", "error", err)
		diff = ""
	}
	return scannablePaths(cfg, args), diff
}

func scannablePaths(cfg config.Config, files []string) []string {
	var out []string
	for _, f := range files {
		if cfg.Scannable(f) {
			out = append(out, f)
		}
	}
	return out
}
