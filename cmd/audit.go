package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
	"github.com/Foodshareclub/commitguard/internal/gitio"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Gate on npm audit results",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		res := checks.Audit(cmd.Context(), gitio.NewClient().Runner())
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		fmt.Printf("audit: %s\n", res.Decision)
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
