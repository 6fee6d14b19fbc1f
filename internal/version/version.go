package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is set with -ldflags "-X .../internal/version.Version=v1.2.3".
	Version = "dev"

	GitCommit = ""
	BuildDate = ""
)

type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get fills commit and date from the toolchain's VCS stamp when the linker
// flags left them empty.
func Get() Info {
	info := Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if info.GitCommit == "" {
		info.GitCommit = buildSetting("vcs.revision")
	}
	if info.BuildDate == "" {
		info.BuildDate = buildSetting("vcs.time")
	}

	return info
}

func buildSetting(key string) string {
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range build.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}

// GetVersion prefers the linker-provided version and falls back to the
// module version recorded by "go install".
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

func (i Info) String() string {
	s := "devtoolbox " + i.Version
	if len(i.GitCommit) >= 7 {
		s += " (" + i.GitCommit[:7] + ")"
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}

	return s + " " + i.GoVersion + " " + i.Platform
}
