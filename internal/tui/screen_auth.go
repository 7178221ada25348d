package tui

import (
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/form"
)

const (
	authEmail = iota
	authPassword
	authFirstName
	authLastName
)

type authScreen struct {
	form   *form.AuthForm
	inputs inputGroup
	notice string
}

func newAuthScreen(f *form.AuthForm, notice string) authScreen {
	s := authScreen{
		form: f,
		inputs: newInputGroup(
			newInput("email", false),
			newInput("password", true),
			newInput("first name", false),
			newInput("last name", false),
		),
		notice: notice,
	}
	s.syncMode()
	return s
}

func (s *authScreen) syncMode() {
	if s.form.Mode() == form.ModeSignup {
		s.inputs.setActive(4)
		return
	}
	s.inputs.setActive(2)
}

func (s *authScreen) toggle() {
	s.form.Toggle()
	s.notice = ""
	s.syncMode()
}

func (s authScreen) input() form.AuthInput {
	return form.AuthInput{
		Email:     s.inputs.value(authEmail),
		Password:  s.inputs.value(authPassword),
		FirstName: s.inputs.value(authFirstName),
		LastName:  s.inputs.value(authLastName),
	}
}

func (s authScreen) View() string {
	signup := s.form.Mode() == form.ModeSignup

	title := "SIGN IN"
	other := "ctrl+t: create an account"
	if signup {
		title = "CREATE ACCOUNT"
		other = "ctrl+t: sign in instead"
	}

	var b strings.Builder
	if s.notice != "" {
		b.WriteString(errorStyle.Render(s.notice))
		b.WriteString("\n\n")
	}
	b.WriteString("Email:      " + s.inputs.inputs[authEmail].View() + "\n")
	b.WriteString("Password:   " + s.inputs.inputs[authPassword].View() + "\n")
	if signup {
		b.WriteString("First name: " + s.inputs.inputs[authFirstName].View() + "\n")
		b.WriteString("Last name:  " + s.inputs.inputs[authLastName].View() + "\n")
	}

	if status := formStatus(s.form.Submitting(), s.form.Err(), ""); status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage(title, b.String(), "enter: submit  tab: next field  "+other)
}
