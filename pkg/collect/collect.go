// Package collect walks a set of configured folders beneath a root
// directory, filters files by an extension whitelist, and concatenates
// their contents into a single flattened snapshot file.
package collect

import (
	"time"

	"go.uber.org/zap"
)

// separator is the literal line emitted after each collected file.
const separator = "---"

// Collector owns the traverse, filter, aggregate and write pipeline for one
// configuration. A run is strictly sequential: folders are traversed in
// configured order and the output is written exactly once at the end.
type Collector struct {
	cfg    Config
	logger *zap.Logger
	skip   map[string]bool // Directory names pruned from traversal, from Config.SkipDirs.

	// fragments is the run's accumulator. Each collected file appends
	// exactly three entries: the relative-path header, the file content,
	// and the separator line.
	fragments []string
}

// Stats summarizes a single run.
type Stats struct {
	Files          int  // Files whose fragments made it into the output.
	MissingFolders int  // Configured folders that did not exist under Root.
	ReadErrors     int  // Matched files skipped due to read or decode failure.
	Written        bool // Whether the output file was written.
}

// New returns a Collector for the given configuration. The logger is
// required; it is the only channel through which failures surface.
func New(cfg Config, logger *zap.Logger) *Collector {
	skip := make(map[string]bool, len(cfg.SkipDirs))
	for _, name := range cfg.SkipDirs {
		skip[name] = true
	}
	return &Collector{
		cfg:    cfg,
		logger: logger,
		skip:   skip,
	}
}

// Run executes the pipeline: traverse each configured folder in order, then
// write the aggregate output once. Per-folder and per-file failures are
// logged and skipped; an output write failure leaves Stats.Written false.
func (c *Collector) Run() Stats {
	startTime := time.Now()
	c.logger.Info("Starting collection",
		zap.String("root", c.cfg.Root),
		zap.Strings("folders", c.cfg.Folders))

	var stats Stats
	c.fragments = c.fragments[:0]

	for _, folder := range c.cfg.Folders {
		c.traverse(folder, &stats)
	}

	c.write(&stats)

	if c.cfg.Tree != "" {
		c.writeTree()
	}

	c.logger.Debug("Collection finished",
		zap.Int("files", stats.Files),
		zap.Duration("elapsed", time.Since(startTime)))
	return stats
}
