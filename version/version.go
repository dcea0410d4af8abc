// Package version reports build metadata of obug binaries.
//
// Version, Branch, BuildUser and BuildDate are set with -ldflags, e.g.
//
//	go build -ldflags "-X go.jacobcolvin.com/obug/version.Version=v1.2.3" ./cmd/obug
//
// The revision is read from the VCS stamp embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	Branch    string `json:"branch"    yaml:"branch"`
	BuildUser string `json:"buildUser" yaml:"buildUser"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the build metadata of the running binary. Unset values are
// reported as "unknown", and the revision carries a "-dirty" suffix when the
// working tree had local changes.
func Get() Info {
	return Info{
		Version:   orUnknown(Version),
		Revision:  revision(debug.ReadBuildInfo),
		Branch:    orUnknown(Branch),
		BuildUser: orUnknown(BuildUser),
		BuildDate: orUnknown(BuildDate),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the metadata as one "key: value" line per field.
func (i Info) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "version: %s\n", i.Version)
	fmt.Fprintf(&b, "revision: %s\n", i.Revision)
	fmt.Fprintf(&b, "branch: %s\n", i.Branch)
	fmt.Fprintf(&b, "build user: %s\n", i.BuildUser)
	fmt.Fprintf(&b, "build date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "go version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "platform: %s", i.Platform)

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
