// Where: internal/version/version.go
// What: Version string for the halide CLI.
// Why: Report a release tag when stamped, or the VCS revision of the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Release is stamped at link time with -ldflags "-X .../version.Release=v1.2.3".
var Release = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns Release when set. Otherwise it falls back to the short
// VCS revision, marked "(dirty)" for modified trees, or "dev".
func GetVersion() string {
	if Release != "" {
		return Release
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
