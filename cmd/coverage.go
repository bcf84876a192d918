package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
)

var coverageSummaryPath string

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Gate on the line coverage of the last test run",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		res := checks.Coverage(coverageSummaryPath, cfg.Coverage)
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		fmt.Printf("coverage: %s\n", res.Decision)
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	coverageCmd.Flags().StringVar(&coverageSummaryPath, "summary", "coverage/coverage-summary.json", "path to the jest coverage summary")
	rootCmd.AddCommand(coverageCmd)
}
