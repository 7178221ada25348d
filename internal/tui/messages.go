package tui

import (
	"github.com/MKhiriev/go-job-alerts/models"
)

// Results of asynchronous commands carry the generation of the screen that
// started them. A result whose generation is no longer current belongs to a
// screen the user has left and is dropped.

type restoredMsg struct {
	session models.Session
	err     error
}

type navigateMsg struct {
	path string
}

// redirectMsg is a delayed navigation issued by the screen of generation gen.
type redirectMsg struct {
	gen  int
	path string
}

type loggedOutMsg struct {
	notice string
}

type authDoneMsg struct {
	gen     int
	session models.Session
	err     error
}

type listLoadedMsg struct {
	gen   int
	items []models.Notification
}

type itemSavedMsg struct {
	gen  int
	item models.Notification
	err  error
}

type itemDeletedMsg struct {
	gen int
	id  string
	err error
}

type savedAllMsg struct {
	gen int
	err error
}

type profileLoadedMsg struct {
	gen  int
	user models.User
	err  error
}

type profileSavedMsg struct {
	gen  int
	user models.User
	err  error
}

type legacyPastedMsg struct {
	gen  int
	item models.Notification
	err  error
}

type copiedMsg struct {
	gen int
	err error
}

type clearStatusMsg struct {
	gen int
}

func (m redirectMsg) generation() int      { return m.gen }
func (m authDoneMsg) generation() int      { return m.gen }
func (m listLoadedMsg) generation() int    { return m.gen }
func (m itemSavedMsg) generation() int     { return m.gen }
func (m itemDeletedMsg) generation() int   { return m.gen }
func (m savedAllMsg) generation() int      { return m.gen }
func (m profileLoadedMsg) generation() int { return m.gen }
func (m profileSavedMsg) generation() int  { return m.gen }
func (m legacyPastedMsg) generation() int  { return m.gen }
func (m copiedMsg) generation() int        { return m.gen }
func (m clearStatusMsg) generation() int   { return m.gen }
