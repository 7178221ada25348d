package tui

import (
	"fmt"

	"github.com/MKhiriev/go-job-alerts/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	v := info.Response()
	body := fmt.Sprintf("Application: go-job-alerts\nVersion: %s\nDate: %s\nCommit: %s", v.Version, v.Date, v.Commit)
	return renderPage("ABOUT", body, "esc: back")
}
