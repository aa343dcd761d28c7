// Package version provides build information for the codeconcat CLI.
package version

import (
	"fmt"
	"runtime"
)

// AppName is the name reported in logs and version output.
const AppName = "codeconcat"

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'codeconcat/pkg/version.Version=1.2.3' -X 'codeconcat/pkg/version.Commit=abcdefg' -X 'codeconcat/pkg/version.BuildTime=2024-04-27T15:04:05Z'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is a snapshot of the build variables plus the running toolchain.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders Info on one line, e.g.
// codeconcat version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
