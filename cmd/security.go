package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/gitio"
	"github.com/Foodshareclub/commitguard/internal/logging"
	"github.com/Foodshareclub/commitguard/internal/report"
)

var securityOutput string

var securityCmd = &cobra.Command{
	Use:   "security [files...]",
	Short: "Scan files and the staged diff against the security catalog",
	Long:  "Scans the given files against the security catalog, or every staged file when none are given. The staged diff is scanned either way.",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig()
		eng := newEngine()

		files, diff := scanTargets(ctx, gitio.NewClient(), cfg, args)
		rep, err := eng.Run(ctx, files, diff)
		if err != nil {
			logging.Logger.Errorw("scan aborted", "error", err)
			os.Exit(1)
		}

		switch strings.ToLower(securityOutput) {
		case "json":
			if err := report.WriteJSON(os.Stdout, rep); err != nil {
				logging.Logger.Errorw("could not render JSON", "error", err)
				os.Exit(1)
			}
		case "sarif":
			if err := report.WriteSARIF(os.Stdout, rep, version); err != nil {
				logging.Logger.Errorw("could not render SARIF", "error", err)
				os.Exit(1)
			}
		default:
			report.Console(os.Stdout, rep)
		}
		os.Exit(rep.Outcome.ExitCode())
	},
}

func init() {
	securityCmd.Flags().StringVarP(&securityOutput, "output", "o", "console", "output format: console, json or sarif")
	rootCmd.AddCommand(securityCmd)
}
