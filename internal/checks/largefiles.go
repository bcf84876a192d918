package checks

import (
	"fmt"
	"os"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
)

// LargeFiles flags staged files above the size limit. Files that vanished
// between staging and the hook running are skipped.
func LargeFiles(files []string, maxKB int) Result {
	const name = "large-files"

	limit := int64(maxKB) * 1024
	var msgs []string
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Size() > limit {
			msgs = append(msgs, fmt.Sprintf("%s is %s (limit %s)", f, formatBytes(info.Size()), formatBytes(limit)))
		}
	}
	if len(msgs) == 0 {
		return pass(name)
	}
	return result(name, model.Fail, msgs)
}

// SensitivePaths blocks paths that must never be committed regardless of
// their content: real env files and vendored dependency trees.
func SensitivePaths(files []string) Result {
	const name = "sensitive-paths"

	var msgs []string
	for _, f := range files {
		base := f
		if i := strings.LastIndex(f, "/"); i >= 0 {
			base = f[i+1:]
		}
		switch {
		case strings.Contains(f, "node_modules/"):
			msgs = append(msgs, fmt.Sprintf("%s: node_modules must not be committed", f))
		case strings.HasPrefix(base, ".env") && !strings.Contains(base, "example"):
			msgs = append(msgs, fmt.Sprintf("%s: env files must not be committed", f))
		}
	}
	if len(msgs) == 0 {
		return pass(name)
	}
	return result(name, model.Fail, msgs)
}
