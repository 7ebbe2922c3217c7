package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.Equal(t, runtime.Version(), v.Go)
	assert.Contains(t, v.OSArch, runtime.GOOS)
}

func TestString(t *testing.T) {
	s := Info{
		Version: "1.2.3",
		Commit:  "abcdefg",
		Date:    "2024-04-27T15:04:05Z",
		Go:      "go1.23.1",
		OSArch:  "linux/amd64",
	}.String()

	assert.Equal(t, "codepack 1.2.3 (commit abcdefg, built 2024-04-27T15:04:05Z, go1.23.1 linux/amd64)", s)
}
