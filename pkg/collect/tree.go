// File: pkg/collect/tree.go
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// writeTree renders an ASCII tree of the configured folders and writes it
// to the configured tree file. Failures follow the same policy as the main
// output: logged, never propagated.
func (c *Collector) writeTree() {
	var builder strings.Builder

	for _, folder := range c.cfg.Folders {
		dir := filepath.Join(c.cfg.Root, folder)
		if _, err := os.Stat(dir); err != nil {
			continue // Missing folders were already warned about during traversal.
		}

		builder.WriteString(filepath.ToSlash(folder) + "/\n")
		subtree, err := renderTree(dir, "", c.skip)
		if err != nil {
			c.logger.Warn("Failed to render folder tree",
				zap.String("folder", dir),
				zap.Error(err))
			continue
		}
		if subtree != "" {
			builder.WriteString(subtree)
			builder.WriteString("\n")
		}
	}

	treePath := filepath.Join(c.cfg.Root, c.cfg.Tree)
	if err := os.WriteFile(treePath, []byte(builder.String()), 0644); err != nil {
		c.logger.Error("Failed to write tree file",
			zap.String("treeFile", treePath),
			zap.Error(err))
		return
	}
	c.logger.Info("Wrote folder tree", zap.String("treeFile", treePath))
}

// renderTree builds the tree structure for one directory recursively,
// directories first, case-insensitive alphabetical within each group.
func renderTree(directory, prefix string, skip map[string]bool) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", directory, err)
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() && skip[entry.Name()] {
			continue
		}
		kept = append(kept, entry)
	}
	entries = kept

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, prefix+connector+entry.Name()+"/")
			subtree, err := renderTree(filepath.Join(directory, entry.Name()), prefix+extension, skip)
			if err != nil {
				return "", err
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}
