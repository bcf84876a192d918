package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/engine"
	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/Foodshareclub/commitguard/internal/report"
)

var preCommitCmd = &cobra.Command{
	Use:   "pre-commit [files...]",
	Short: "Run the full gate: security scan plus staged-file hygiene checks",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig()
		eng := newEngine()
		git := gitio.NewClient()

		// Hook managers pass the staged paths as arguments; with none the
		// list comes from git directly.
		allStaged := args
		if len(allStaged) == 0 {
			var err error
			allStaged, err = git.StagedFiles(ctx)
			if err != nil {
				logging.Logger.Warnw("could not list staged files", "error", err)
				allStaged = nil
			}
		}
		files, diff := scanTargets(ctx, git, cfg, args)

		rep, err := eng.Run(ctx, files, diff)
		if err != nil {
			logging.Logger.Errorw("scan aborted", "error", err)
			os.Exit(1)
		}

		branch, err := git.CurrentBranch(ctx)
		if err != nil {
			logging.Logger.Warnw("could not resolve branch", "error", err)
			branch = ""
		}
		allowProtected := os.Getenv("COMMITGUARD_ALLOW_PROTECTED") == "1"

		results := []checks.Result{
			checks.SensitivePaths(allStaged),
			checks.LargeFiles(allStaged, cfg.MaxFileSizeKB),
			checks.ProtectedBranch(branch, cfg.ProtectedBranches, allowProtected),
		}
		store := engine.NewContentStore()
		for _, f := range files {
			if cfg.IsTestFile(f) {
				continue
			}
			content, ok := store.Get(f)
			if !ok {
				continue
			}
			results = append(results, checks.Complexity(f, content))
			results = append(results, checks.Imports(f, content))
		}

		report.Console(os.Stdout, rep)
		report.ConsoleChecks(os.Stdout, results)

		if rep.Outcome == model.Fail || checks.Worst(results) == model.Fail {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(preCommitCmd)
}
