// File: pkg/collect/config.go
package collect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the parameters for a single collection run. It is assembled
// from the compiled-in defaults, an optional YAML config file, and
// command-line flags, and is not modified after construction.
type Config struct {
	Root       string   `yaml:"root"`       // Directory all folder paths resolve against.
	Folders    []string `yaml:"folders"`    // Folders under Root to scan, in configured order.
	Output     string   `yaml:"output"`     // Output filename, relative to Root.
	Extensions []string `yaml:"extensions"` // File suffixes to collect, e.g. ".ts".
	Tree       string   `yaml:"tree"`       // Optional tree output filename, relative to Root; empty disables.
	LogFile    string   `yaml:"log_file"`   // Path of the debug-level operation log.

	// SkipDirs lists directory names pruned from traversal, e.g.
	// "node_modules". Empty by default: every file reachable from a
	// configured folder is considered, and inclusion is decided solely by
	// the extension whitelist.
	SkipDirs []string `yaml:"skip_dirs"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Root:       ".",
		Folders:    []string{"amplify"},
		Output:     "current-code.txt",
		Extensions: []string{".ts", ".tsx", ".js", ".jsx", ".css"},
		LogFile:    "file_operations.log",
	}
}

// Load reads a YAML config file and merges it over the defaults. A missing
// file is not an error; the defaults are returned unchanged. A malformed
// file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the defaults.
	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	if len(fileCfg.Folders) > 0 {
		cfg.Folders = fileCfg.Folders
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if fileCfg.Tree != "" {
		cfg.Tree = fileCfg.Tree
	}
	if fileCfg.LogFile != "" {
		cfg.LogFile = fileCfg.LogFile
	}
	if len(fileCfg.SkipDirs) > 0 {
		cfg.SkipDirs = fileCfg.SkipDirs
	}

	return cfg, nil
}
