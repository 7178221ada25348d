package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const summaryWidth = 72

type homeScreen struct {
	user    *models.User
	items   []models.Notification
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newHomeScreen(user *models.User, items []models.Notification) homeScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return homeScreen{user: user, items: items, spinner: s}
}

func (m *homeScreen) setItems(items []models.Notification) {
	m.items = items
	m.loading = false
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m homeScreen) current() (models.Notification, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Notification{}, false
	}
	return m.items[m.idx], true
}

func (m homeScreen) View() string {
	title := "JOB ALERTS"
	if m.user != nil {
		title += " · " + m.user.Name()
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No notifications yet. Press n to create one.\n")
	default:
		for i, n := range m.items {
			cursor := "  "
			line := fitText(n.Summary(), summaryWidth)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			mail := " "
			if n.EmailEnabled {
				mail = "@"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mail, line))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}

	return renderPage(title, b.String(),
		"n: new  e: edit  d: delete  c: copy  r: refresh  S: save all  p: profile  l: logout  v: about  q: quit")
}
