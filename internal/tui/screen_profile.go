package tui

import (
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/form"
)

const (
	profileName = iota
	profileEmail
	profileCurrentPassword
	profileNewPassword
	profileConfirm
)

type profileScreen struct {
	form   *form.ProfileForm
	inputs inputGroup
}

func newProfileScreen(f *form.ProfileForm) profileScreen {
	s := profileScreen{
		form: f,
		inputs: newInputGroup(
			newInput("name", false),
			newInput("email", false),
			newInput("current password", true),
			newInput("new password", true),
			newInput("confirm new password", true),
		),
	}

	v := f.Values()
	s.inputs.setValue(profileName, v.Name)
	s.inputs.setValue(profileEmail, v.Email)
	return s
}

func (s profileScreen) input() form.ProfileInput {
	return form.ProfileInput{
		Name:            s.inputs.value(profileName),
		Email:           s.inputs.value(profileEmail),
		CurrentPassword: s.inputs.value(profileCurrentPassword),
		NewPassword:     s.inputs.value(profileNewPassword),
		Confirm:         s.inputs.value(profileConfirm),
	}
}

func (s *profileScreen) clearPasswords() {
	s.inputs.setValue(profileCurrentPassword, "")
	s.inputs.setValue(profileNewPassword, "")
	s.inputs.setValue(profileConfirm, "")
}

func (s profileScreen) View() string {
	var b strings.Builder
	b.WriteString("Name:             " + s.inputs.inputs[profileName].View() + "\n")
	b.WriteString("Email:            " + s.inputs.inputs[profileEmail].View() + "\n\n")
	b.WriteString(helpStyle.Render("Leave the new password empty to keep the current one.") + "\n")
	b.WriteString("Current password: " + s.inputs.inputs[profileCurrentPassword].View() + "\n")
	b.WriteString("New password:     " + s.inputs.inputs[profileNewPassword].View() + "\n")
	b.WriteString("Confirm:          " + s.inputs.inputs[profileConfirm].View() + "\n")

	if status := formStatus(s.form.Submitting(), s.form.Err(), s.form.Message()); status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage("PROFILE", b.String(), "enter: save  tab: next field  esc: back")
}
