// File: pkg/collect/write.go
package collect

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// write joins all accumulated fragments with newlines and writes them as
// the entire content of the output file, overwriting any previous snapshot.
// A write failure is logged and ends the run without output.
func (c *Collector) write(stats *Stats) {
	outPath := filepath.Join(c.cfg.Root, c.cfg.Output)
	content := strings.Join(c.fragments, "\n")

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		c.logger.Error("Failed to write output file",
			zap.String("outputFile", outPath),
			zap.Error(err))
		return
	}

	stats.Written = true
	c.logger.Info("Operation completed, all collected code written",
		zap.String("outputFile", outPath),
		zap.Int("files", stats.Files))
}
