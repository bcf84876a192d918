package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Foodshareclub/commitguard/internal/engine"
	"github.com/Foodshareclub/commitguard/internal/logging"
	"github.com/Foodshareclub/commitguard/internal/report"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rescan files against the security catalog as they change",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		cfg := loadConfig()
		cat, err := rules.Default()
		if err != nil {
			logging.Logger.Errorw("rule catalog failed to compile", "error", err)
			os.Exit(1)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logging.Logger.Errorw("could not start watcher", "error", err)
			os.Exit(1)
		}
		defer watcher.Close()

		// Watch every directory under root except the skip paths; fsnotify
		// does not recurse on its own.
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return err
			}
			slash := filepath.ToSlash(path) + "/"
			for _, skip := range cfg.SkipPaths {
				if strings.Contains(slash, skip) {
					return filepath.SkipDir
				}
			}
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		})
		if err != nil {
			logging.Logger.Errorw("could not watch tree", "root", root, "error", err)
			os.Exit(1)
		}
		logging.Logger.Infof("watching %s", root)

		for {
			select {
			case <-cmd.Context().Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !cfg.Scannable(filepath.ToSlash(event.Name)) {
					continue
				}
				// Fresh store per event so edits are never served stale.
				findings := engine.ScanFile(cat, engine.NewContentStore(), event.Name)
				if len(findings) == 0 {
					continue
				}
				rep := engine.Report{Findings: findings}
				for _, f := range findings {
					rep.Tally.Add(f.Severity)
				}
				rep.Outcome = engine.Decide(rep.Tally)
				rep.Decision = rep.Outcome.String()
				report.Console(os.Stdout, rep)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Logger.Warnw("watch error", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
