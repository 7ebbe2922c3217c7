// Package logging constructs the codepack logger: a console sink for humans
// and a debug-level file sink for the operation log, behind a single zap
// handle. The handle is built once at startup and passed down explicitly;
// there is no package-level logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New builds the two-sink logger. The console sink writes to stderr at info
// level and above; the file sink appends to logFile at debug level and
// above. Both sinks share one timestamped "time - level - message" line
// format.
func New(logFile string) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " - "
	enc := zapcore.NewConsoleEncoder(encCfg)

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.InfoLevel),
		zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.DebugLevel),
	)
	return zap.New(core), nil
}

// Sync flushes the logger. Syncing stderr fails with "invalid argument" on
// some platforms when it is neither a terminal nor a regular file, so that
// case is swallowed.
func Sync(logger *zap.Logger) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return nil
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			return err
		}
	}
	return nil
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
