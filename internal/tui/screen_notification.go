package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/form"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Fields of the notification screen in focus order. The first four are
// text inputs.
const (
	fieldTitle = iota
	fieldCountry
	fieldLocation
	fieldDist
	fieldSeniority
	fieldJobScope
	fieldFrequency
	fieldEmail
	notificationFieldCount
)

type notificationScreen struct {
	form *form.NotificationForm

	base      models.Notification
	inputs    inputGroup
	seniority choice[models.Seniority]
	jobScope  choice[models.JobScope]
	frequency choice[models.Frequency]
	email     bool
	focus     int
}

func newNotificationScreen(f *form.NotificationForm) notificationScreen {
	s := notificationScreen{
		form: f,
		inputs: newInputGroup(
			newInput("Backend Engineer", false),
			newInput("IL", false),
			newInput("Tel Aviv", false),
			newInput("0", false),
		),
	}
	s.fill(f.Values())
	return s
}

// fill replaces every input with the values of n.
func (s *notificationScreen) fill(n models.Notification) {
	s.base = n
	s.inputs.setValue(fieldTitle, n.Title)
	s.inputs.setValue(fieldCountry, n.Country)
	s.inputs.setValue(fieldLocation, n.Location)
	s.inputs.setValue(fieldDist, "")
	if n.Dist != 0 {
		s.inputs.setValue(fieldDist, strconv.Itoa(n.Dist))
	}
	s.seniority = newChoice(models.Seniorities, n.Seniority)
	s.jobScope = newChoice(models.JobScopes, n.JobScope)
	s.frequency = newChoice(models.Frequencies, n.Frequency)
	s.email = n.EmailEnabled
}

// value collects the inputs. A distance that is not a number is reported
// as -1 so validation rejects it.
func (s notificationScreen) value() models.Notification {
	n := s.base
	n.Title = s.inputs.value(fieldTitle)
	n.Country = s.inputs.value(fieldCountry)
	n.Location = s.inputs.value(fieldLocation)
	n.Seniority = s.seniority.value()
	n.JobScope = s.jobScope.value()
	n.Frequency = s.frequency.value()
	n.EmailEnabled = s.email

	n.Dist = 0
	if raw := strings.TrimSpace(s.inputs.value(fieldDist)); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			d = -1
		}
		n.Dist = d
	}
	return n
}

func (s *notificationScreen) setFocus(i int) {
	s.focus = i
	if i < fieldSeniority {
		s.inputs.focusOn(i)
	} else {
		s.inputs.inputs[s.inputs.focus].Blur()
	}
}

func (s notificationScreen) update(msg tea.Msg) (notificationScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			s.setFocus((s.focus + 1) % notificationFieldCount)
			return s, nil
		case key.Matches(keyMsg, keys.backtab):
			s.setFocus((s.focus - 1 + notificationFieldCount) % notificationFieldCount)
			return s, nil
		}

		switch s.focus {
		case fieldSeniority, fieldJobScope, fieldFrequency, fieldEmail:
			s.step(keyMsg)
			return s, nil
		}
	}

	if s.focus >= fieldSeniority {
		return s, nil
	}

	var cmd tea.Cmd
	s.inputs, cmd = s.inputs.update(msg)
	return s, cmd
}

func (s *notificationScreen) step(msg tea.KeyMsg) {
	forward := key.Matches(msg, keys.right) || key.Matches(msg, keys.toggle)
	backward := key.Matches(msg, keys.left)
	if !forward && !backward {
		return
	}

	switch s.focus {
	case fieldSeniority:
		if forward {
			s.seniority.next()
		} else {
			s.seniority.prev()
		}
	case fieldJobScope:
		if forward {
			s.jobScope.next()
		} else {
			s.jobScope.prev()
		}
	case fieldFrequency:
		if forward {
			s.frequency.next()
		} else {
			s.frequency.prev()
		}
	case fieldEmail:
		s.email = !s.email
	}
}

func (s notificationScreen) View() string {
	title := "NEW NOTIFICATION"
	if s.form.Editing() {
		title = "EDIT NOTIFICATION"
	}

	email := "[ ] send e-mail"
	if s.email {
		email = "[x] send e-mail"
	}
	if s.focus == fieldEmail {
		email = selectedStyle.Render(email)
	}

	var b strings.Builder
	b.WriteString("Title:      " + s.inputs.inputs[fieldTitle].View() + "\n")
	b.WriteString("Country:    " + s.inputs.inputs[fieldCountry].View() + "\n")
	b.WriteString("Location:   " + s.inputs.inputs[fieldLocation].View() + "\n")
	b.WriteString("Radius, km: " + s.inputs.inputs[fieldDist].View() + "\n")
	b.WriteString("Seniority:  " + s.seniority.View(s.focus == fieldSeniority) + "\n")
	b.WriteString("Job scope:  " + s.jobScope.View(s.focus == fieldJobScope) + "\n")
	b.WriteString("Frequency:  " + s.frequency.View(s.focus == fieldFrequency) + "\n")
	b.WriteString("            " + email + "\n")

	if status := formStatus(s.form.Submitting(), s.form.Err(), s.form.Message()); status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage(title, b.String(),
		"enter: save  tab: next field  ←/→/space: change  ctrl+l: paste v1 record  esc: back")
}
