package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/checks"
)

var bundleDir string

var bundleSizeCmd = &cobra.Command{
	Use:   "bundle-size",
	Short: "Gate on the weight of the built client bundles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		res := checks.BundleSize(bundleDir, cfg.Bundle)
		for _, m := range res.Messages {
			fmt.Println(m)
		}
		fmt.Printf("bundle-size: %s\n", res.Decision)
		os.Exit(res.Outcome.ExitCode())
	},
}

func init() {
	bundleSizeCmd.Flags().StringVar(&bundleDir, "dir", ".next/static", "built client assets directory")
	rootCmd.AddCommand(bundleSizeCmd)
}
