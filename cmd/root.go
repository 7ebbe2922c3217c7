package cmd

import (
	"fmt"

	"codepack/pkg/collect"
	"codepack/pkg/logging"

	"github.com/spf13/cobra"
)

// RootCmd is the base command; invoked without subcommands it runs the
// collection pipeline.
var RootCmd = &cobra.Command{
	Use:   "codepack",
	Short: "codepack flattens a source tree into a single text file",
	Long: `codepack recursively scans configured folders beneath a root directory,
collects files matching an extension whitelist, and concatenates their
contents into a single output file, each entry prefixed with its relative
path.`,
	SilenceUsage: true,
	RunE:         runCollect,
}

func init() {
	RootCmd.Flags().StringP("root", "r", "", "root directory to resolve folders against")
	RootCmd.Flags().StringArrayP("folder", "f", nil, "folder under the root to scan (repeatable)")
	RootCmd.Flags().StringP("output", "o", "", "output filename, relative to the root")
	RootCmd.Flags().StringArrayP("ext", "e", nil, "file extension to collect, e.g. .ts (repeatable)")
	RootCmd.Flags().String("tree", "", "also write an ASCII tree of the folders to this file")
	RootCmd.Flags().StringArray("skip", nil, "directory name to prune from traversal, e.g. node_modules (repeatable)")
	RootCmd.Flags().String("log-file", "", "path of the debug-level operation log")
	RootCmd.Flags().StringP("config", "c", "codepack.yaml", "path to a YAML config file")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	cfg, err := collect.Load(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logging.Sync(logger)
	}()

	// All per-folder and per-file failures are downgraded to log events;
	// the run itself never fails the process.
	collect.New(cfg, logger).Run()
	return nil
}

// applyFlagOverrides layers explicitly set command-line flags over the
// configuration loaded from defaults and the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *collect.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("folder") {
		cfg.Folders, _ = flags.GetStringArray("folder")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("ext") {
		cfg.Extensions, _ = flags.GetStringArray("ext")
	}
	if flags.Changed("tree") {
		cfg.Tree, _ = flags.GetString("tree")
	}
	if flags.Changed("skip") {
		cfg.SkipDirs, _ = flags.GetStringArray("skip")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
}
