package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
)

var maxSizeKB int

var largeFilesCmd = &cobra.Command{
	Use:   "large-files",
	Short: "Reject staged files above the size limit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		limit := cfg.MaxFileSizeKB
		if cmd.Flags().Changed("max-size") {
			limit = maxSizeKB
		}
		files, err := gitio.NewClient().StagedFiles(cmd.Context())
		if err != nil {
			logging.Logger.Warnw("could not list staged files", "error", err)
		}
		res := checks.LargeFiles(files, limit)
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	largeFilesCmd.Flags().IntVar(&maxSizeKB, "max-size", config.Default().MaxFileSizeKB, "size limit in KB")
	rootCmd.AddCommand(largeFilesCmd)
}
