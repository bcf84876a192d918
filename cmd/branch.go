package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
)

var protectedBranchCmd = &cobra.Command{
	Use:   "protected-branch",
	Short: "Block direct commits to protected branches",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		branch, err := gitio.NewClient().CurrentBranch(cmd.Context())
		if err != nil {
			logging.Logger.Warnw("could not resolve branch", "error", err)
			branch = ""
		}
		allow := os.Getenv("COMMITGUARD_ALLOW_PROTECTED") == "1"
		res := checks.ProtectedBranch(branch, cfg.ProtectedBranches, allow)
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(protectedBranchCmd)
}
