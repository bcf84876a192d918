package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/logging"
)

var commitMsgCmd = &cobra.Command{
	Use:   "commit-msg <message-file>",
	Short: "Validate a commit message against conventional commits",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Git passes the message file path as the hook's first argument.
		data, err := os.ReadFile(args[0])
		if err != nil {
			logging.Logger.Errorw("could not read commit message", "path", args[0], "error", err)
			os.Exit(1)
		}
		res := checks.CommitMessage(string(data))
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(commitMsgCmd)
}
