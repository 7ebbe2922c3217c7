// File: pkg/collect/traversal.go
package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// traverse enumerates every file under root+folder and appends matching
// files to the accumulator. A missing folder is a warning, not a failure.
// Directories named in Config.SkipDirs are pruned; with no skip list every
// reachable file is considered.
func (c *Collector) traverse(folder string, stats *Stats) {
	dir := filepath.Join(c.cfg.Root, folder)

	if _, err := os.Stat(dir); err != nil {
		c.logger.Warn("Folder does not exist, skipping",
			zap.String("folder", folder),
			zap.Error(err))
		stats.MissingFolders++
		return
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("Error accessing path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != dir && c.skip[d.Name()] {
				c.logger.Debug("Skipping directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !c.matchesExtension(d.Name()) {
			return nil
		}

		c.appendFile(path, stats)
		return nil
	})
	if err != nil {
		c.logger.Error("Traversal failed", zap.String("folder", dir), zap.Error(err))
		return
	}

	c.logger.Info("Searched folder", zap.String("folder", dir))
}

// matchesExtension reports whether the file name ends with any configured
// extension. Matching is a case-sensitive exact suffix match.
func (c *Collector) matchesExtension(name string) bool {
	for _, ext := range c.cfg.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// appendFile reads one matched file and appends its three fragments to the
// accumulator. Read and decode failures are logged and leave the
// accumulator untouched.
func (c *Collector) appendFile(path string, stats *Stats) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Error("Failed to read file",
			zap.String("file", path),
			zap.Error(err))
		stats.ReadErrors++
		return
	}

	if !isTextContent(data) {
		c.logger.Error("File content is not decodable as text",
			zap.String("file", path))
		stats.ReadErrors++
		return
	}

	relPath, err := filepath.Rel(c.cfg.Root, path)
	if err != nil {
		c.logger.Warn("Unable to determine relative path, using full path",
			zap.String("file", path),
			zap.Error(err))
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	c.fragments = append(c.fragments,
		"File Path: "+relPath,
		string(data),
		separator,
	)
	stats.Files++
	c.logger.Info("Appended file content", zap.String("file", relPath))
}
