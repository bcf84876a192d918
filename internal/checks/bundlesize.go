package checks

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/config"
	"github.com/Foodshareclub/commitguard/internal/model"
)

// BundleSize walks the built client assets under dir (normally
// .next/static) and gates on chunk and total weight. An absent build
// directory passes; the check only means something after a build.
func BundleSize(dir string, cfg config.Bundle) Result {
	const name = "bundle-size"

	if _, err := os.Stat(dir); err != nil {
		return pass(name)
	}

	chunkLimit := int64(cfg.MaxChunkKB) * 1024
	totalLimit := int64(cfg.MaxTotalMB) * 1024 * 1024

	var total int64
	var msgs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".js") {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		if info.Size() > chunkLimit {
			msgs = append(msgs, fmt.Sprintf("chunk %s is %s (limit %s)",
				filepath.Base(path), formatBytes(info.Size()), formatBytes(chunkLimit)))
		}
		return nil
	})
	if err != nil {
		return result(name, model.PassWithWarnings, []string{fmt.Sprintf("walk %s: %v", dir, err)})
	}

	if total > totalLimit {
		msgs = append(msgs, fmt.Sprintf("total JS weight %s exceeds the %s budget",
			formatBytes(total), formatBytes(totalLimit)))
		return result(name, model.Fail, msgs)
	}
	if len(msgs) > 0 {
		return result(name, model.PassWithWarnings, msgs)
	}
	return pass(name)
}
