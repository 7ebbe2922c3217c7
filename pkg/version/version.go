// Package version exposes the build metadata stamped into the codepack
// binary.
package version

import (
	"fmt"
	"runtime"
)

// Stamped at build time via
// -ldflags "-X codepack/pkg/version.Version=… -X codepack/pkg/version.Commit=… -X codepack/pkg/version.Date=…".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the binary's build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OSArch  string
}

// Get returns the metadata for the running binary.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
		OSArch:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the info as a single line, e.g.
// "codepack dev (commit none, built unknown, go1.23.1 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("codepack %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.Date, i.Go, i.OSArch)
}
