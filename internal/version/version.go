// Package version provides build version information for attrkit.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "0.1.0-dev"
	// Commit is the git commit hash (set by build flags)
	Commit = "unknown"
	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// Info contains version and build information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Semver parses the version. Build flags may inject a leading "v".
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", i.Version, err)
	}
	return v, nil
}

// IsRelease reports whether the version is a parseable release without a
// prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := i.Semver()
	return err == nil && v.Prerelease() == ""
}

// Full returns a detailed version string with all build information
func (i Info) Full() string {
	return i.Version + " (" + i.Commit + ") built " + i.BuildDate + " " + i.GoVersion + " " + i.Platform
}

// Report is Info plus the normalized semantic version, as printed by the
// version command.
type Report struct {
	Info
	Semver  string `json:"semver,omitempty"`
	Release bool   `json:"release"`
}

// Report builds a Report. Semver is empty when Version does not parse.
func (i Info) Report() Report {
	r := Report{Info: i}
	if v, err := i.Semver(); err == nil {
		r.Semver = v.String()
		r.Release = v.Prerelease() == ""
	}
	return r
}

// Channel describes the version as "release", "prerelease" or "unversioned".
func (r Report) Channel() string {
	switch {
	case r.Semver == "":
		return "unversioned"
	case r.Release:
		return "release"
	default:
		return "prerelease"
	}
}
