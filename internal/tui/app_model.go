package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/form"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// replaced in tests
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// appModel is the router: it owns the session, maps the current route onto
// a screen and delegates input to it.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	ids       utils.IDGenerator
	ui        uiSettings
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	session models.Session

	route         string
	currentScreen screen
	// gen identifies the current screen instance; see messages.go.
	gen int

	loading      spinner.Model
	auth         authScreen
	home         homeScreen
	notification notificationScreen
	profile      profileScreen

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
}

type uiSettings struct {
	saveRedirectDelay time.Duration
}

func newAppModel(ctx context.Context, services *service.ClientServices, ids utils.IDGenerator, ui uiSettings, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		services:      services,
		ids:           ids,
		ui:            ui,
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenLoading,
		loading:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Tick, m.cmdRestore())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case tea.WindowSizeMsg:
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinner(msg)
	case restoredMsg:
		m.session = msg.session
		notice := ""
		if msg.err != nil {
			notice = app.MsgSessionExpired
		}
		return m.navigateWithNotice(routeRoot, notice)
	case navigateMsg:
		return m.navigate(msg.path)
	case loggedOutMsg:
		m.session = models.Session{}
		return m.navigateWithNotice(routeRoot, msg.notice)
	}

	if res, ok := msg.(interface{ generation() int }); ok && res.generation() != m.gen {
		m.logger.Debug().Str("func", "appModel.Update").Str("msg", fmt.Sprintf("%T", msg)).Msg("dropping result of a closed screen")
		return m, nil
	}

	switch msg := msg.(type) {
	case redirectMsg:
		return m.navigate(msg.path)
	case authDoneMsg:
		if msg.err != nil {
			return m, nil
		}
		m.session = msg.session
		return m.navigate(routeRoot)
	case listLoadedMsg:
		m.home.setItems(msg.items)
		return m, nil
	case itemSavedMsg:
		if msg.err != nil {
			return m.handleError(msg.err, "")
		}
		if delay := m.notification.form.RedirectDelay(); delay > 0 {
			gen := m.gen
			return m, tea.Tick(delay, func(time.Time) tea.Msg { return redirectMsg{gen: gen, path: routeRoot} })
		}
		return m.navigate(routeRoot)
	case itemDeletedMsg:
		m.pendingDelete = ""
		m.home.setItems(m.services.Notifications.Items())
		if msg.err != nil {
			return m.handleError(msg.err, app.MsgUnableToDelete)
		}
		m.home.status = app.MsgNotificationDeleted
		return m, m.cmdClearStatus()
	case savedAllMsg:
		if msg.err != nil {
			return m.handleError(msg.err, app.MsgUnableToSave)
		}
		m.home.status = "All notifications saved"
		return m, m.cmdClearStatus()
	case profileLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err, "")
		}
		m.session.User = &msg.user
		m.profile = newProfileScreen(form.NewProfileForm(m.services.ProfileService, msg.user))
		return m, nil
	case profileSavedMsg:
		if msg.err != nil {
			return m.handleError(msg.err, "")
		}
		m.session.User = &msg.user
		m.profile.clearPasswords()
		return m, nil
	case legacyPastedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.notification.fill(msg.item)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.home.status = app.MsgCopiedToClipboard
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.home.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenAuth:
		return m.updateAuth(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenNotificationForm:
		return m.updateNotification(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenLoading:
		body = renderPage("JOB ALERTS", m.loading.View()+" Restoring session...", "")
	case screenAuth:
		body = m.auth.View()
	case screenHome:
		body = m.home.View()
	case screenNotificationForm:
		body = m.notification.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) navigate(path string) (appModel, tea.Cmd) {
	return m.navigateWithNotice(path, "")
}

// navigateWithNotice opens the screen of path as a fresh instance. Results
// of commands started by the previous screen are ignored from now on.
func (m appModel) navigateWithNotice(path, notice string) (appModel, tea.Cmd) {
	next, id := resolve(path, m.session.Authenticated())

	m.route = path
	m.currentScreen = next
	m.gen++
	m.showConfirm = false
	m.pendingDelete = ""

	switch next {
	case screenAuth:
		m.route = routeRoot
		m.auth = newAuthScreen(form.NewAuthForm(m.services.SessionService, nil), notice)
	case screenHome:
		m.home = newHomeScreen(m.session.User, m.services.Notifications.Items())
	case screenNotificationForm:
		var initial *models.Notification
		if id != "" {
			if n, ok := m.services.Notifications.Get(id); ok {
				initial = &n
			}
		}
		m.notification = newNotificationScreen(form.NewNotificationForm(m.services.Notifications, m.ids, initial, m.ui.saveRedirectDelay))
	case screenProfile:
		user := models.User{}
		if m.session.User != nil {
			user = *m.session.User
		}
		m.profile = newProfileScreen(form.NewProfileForm(m.services.ProfileService, user))
		return m, m.cmdLoadProfile()
	}

	return m, nil
}

// handleError logs out on an expired session and otherwise shows err. Forms
// already display their own error, so prefix is only used for the overlay.
func (m appModel) handleError(err error, prefix string) (appModel, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		return m, m.cmdLogout(app.MsgSessionExpired)
	}

	switch m.currentScreen {
	case screenNotificationForm, screenProfile:
		return m, nil
	}

	message := userMessage(err)
	if prefix != "" {
		message = prefix + ": " + message
	}
	m.showErrorf(message)
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateSpinner(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.currentScreen == screenLoading:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd
	case m.currentScreen == screenHome && m.home.loading:
		var cmd tea.Cmd
		m.home.spinner, cmd = m.home.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.authMode):
			if !m.auth.form.Submitting() {
				m.auth.toggle()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.auth.form.Submitting() {
				return m, nil
			}
			m.auth.notice = ""
			return m, m.cmdAuth(m.auth.form, m.auth.input())
		case key.Matches(keyMsg, keys.tab):
			m.auth.inputs.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.auth.inputs.prev()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.auth.inputs, cmd = m.auth.inputs.update(msg)
	return m, cmd
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		return m.navigate(routeNewNotification)
	case key.Matches(keyMsg, keys.edit):
		if n, ok := m.home.current(); ok {
			return m.navigate(editNotificationRoute(n.ID))
		}
	case key.Matches(keyMsg, keys.delete):
		if n, ok := m.home.current(); ok {
			m.showConfirm = true
			m.confirm.message = n.Title
			m.pendingDelete = n.ID
		}
	case key.Matches(keyMsg, keys.copy):
		if n, ok := m.home.current(); ok {
			return m, m.cmdCopy(n.Summary())
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.home.loading {
			return m, nil
		}
		m.home.loading = true
		return m, tea.Batch(m.home.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.saveAll):
		return m, m.cmdSaveAll()
	case key.Matches(keyMsg, keys.profile):
		return m.navigate(routeProfile)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout("")
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateNotification(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.navigate(routeRoot)
		case key.Matches(keyMsg, keys.legacy):
			return m, m.cmdPasteLegacy(m.notification.form)
		case key.Matches(keyMsg, keys.enter):
			if m.notification.form.Submitting() || m.notification.form.Status() == form.StatusSuccess {
				return m, nil
			}
			return m, m.cmdSaveNotification(m.notification.form, m.notification.value())
		}
	}

	var cmd tea.Cmd
	m.notification, cmd = m.notification.update(msg)
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.navigate(routeRoot)
		case key.Matches(keyMsg, keys.enter):
			if m.profile.form.Submitting() {
				return m, nil
			}
			return m, m.cmdSaveProfile(m.profile.form, m.profile.input())
		case key.Matches(keyMsg, keys.tab):
			m.profile.inputs.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.inputs.prev()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.profile.inputs, cmd = m.profile.inputs.update(msg)
	return m, cmd
}

func (m appModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		session, err := svc.Restore(ctx)
		return restoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdAuth(f *form.AuthForm, in form.AuthInput) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	return func() tea.Msg {
		session, err := f.Submit(ctx, in)
		return authDoneMsg{gen: gen, session: session, err: err}
	}
}

func (m appModel) cmdLogout(notice string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	log := m.logger
	return func() tea.Msg {
		if err := svc.Logout(ctx); err != nil {
			log.Warn().Err(err).Str("func", "appModel.cmdLogout").Msg("logout did not clear stored token")
		}
		return loggedOutMsg{notice: notice}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx, gen := m.ctx, m.gen
	repo := m.services.Notifications
	return func() tea.Msg {
		return listLoadedMsg{gen: gen, items: repo.List(ctx)}
	}
}

func (m appModel) cmdSaveNotification(f *form.NotificationForm, n models.Notification) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	return func() tea.Msg {
		saved, err := f.Submit(ctx, n)
		if errors.Is(err, form.ErrSubmitting) {
			return nil
		}
		return itemSavedMsg{gen: gen, item: saved, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	repo := m.services.Notifications
	return func() tea.Msg {
		return itemDeletedMsg{gen: gen, id: id, err: repo.Delete(ctx, id)}
	}
}

func (m appModel) cmdSaveAll() tea.Cmd {
	ctx, gen := m.ctx, m.gen
	repo := m.services.Notifications
	return func() tea.Msg {
		return savedAllMsg{gen: gen, err: repo.SaveAll(ctx)}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx, gen := m.ctx, m.gen
	svc := m.services.ProfileService
	return func() tea.Msg {
		user, err := svc.Load(ctx)
		return profileLoadedMsg{gen: gen, user: user, err: err}
	}
}

func (m appModel) cmdSaveProfile(f *form.ProfileForm, in form.ProfileInput) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	return func() tea.Msg {
		user, err := f.Submit(ctx, in)
		if errors.Is(err, form.ErrSubmitting) {
			return nil
		}
		return profileSavedMsg{gen: gen, user: user, err: err}
	}
}

// cmdPasteLegacy reads a first generation record (JSON) from the clipboard.
func (m appModel) cmdPasteLegacy(f *form.NotificationForm) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			return legacyPastedMsg{gen: gen, err: fmt.Errorf("read clipboard: %w", err)}
		}

		var legacy models.LegacyNotification
		if err = json.Unmarshal([]byte(strings.TrimSpace(text)), &legacy); err != nil {
			return legacyPastedMsg{gen: gen, err: fmt.Errorf("clipboard does not hold a notification record: %w", err)}
		}

		n, err := f.FromLegacy(ctx, legacy)
		return legacyPastedMsg{gen: gen, item: n, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{gen: gen, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{gen: gen}
	}
}

func (m appModel) cmdClearStatus() tea.Cmd {
	gen := m.gen
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}
