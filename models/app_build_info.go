package models

// AppBuildInfo is the version stamp linked into the vault binaries.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns the stamp set by -ldflags. Any part may be empty.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// Lines formats the stamp for the startup banner and the about screen.
// Unset parts read "N/A".
func (a AppBuildInfo) Lines() []string {
	parts := [...]struct{ label, value string }{
		{"Build version", a.version},
		{"Build date", a.date},
		{"Build commit", a.commit},
	}

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.value == "" {
			p.value = "N/A"
		}
		lines = append(lines, p.label+": "+p.value)
	}
	return lines
}
