// Package build_version exposes the version stamped into the binary. Both values are
// meant to be overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/commanderHR1/hx/internal/build_version.gitHash=$(git rev-parse --short HEAD)"
package build_version

import "fmt"

var (
	version = "1.0.0"
	gitHash = "unknown"
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// String is the line printed by `hx -v`.
func String() string {
	return fmt.Sprintf("hx version %s (git: %s)", version, gitHash)
}
