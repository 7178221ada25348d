package models

import "strings"

// AppBuildInfo is the version metadata linked into both binaries with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: strings.TrimSpace(version),
		Date:    strings.TrimSpace(date),
		Commit:  strings.TrimSpace(commit),
	}
}

// Response converts the build info into the body of GET /version.
// Empty values are reported as "N/A".
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		Version: orNA(a.Version),
		Date:    orNA(a.Date),
		Commit:  orNA(a.Commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
