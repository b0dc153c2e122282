package version

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	// Version indicates which version of the binary is running.
	// Overridden at build time via -ldflags.
	Version = "0.1.0-dev"

	// GitCommit indicates which git hash the binary was built off of.
	// Overridden at build time via -ldflags.
	GitCommit = ""
)

// FullVersion returns the version string including the git commit, when known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}

// PrintVersion prints the program name and version to stdout.
func PrintVersion() {
	fmt.Printf("%s %s\n", filepath.Base(os.Args[0]), FullVersion())
}
