package tui

import (
	"net/url"
	"strings"
)

// Routes of the client. Edit routes carry the escaped notification id:
// /notifications/{id}/edit.
const (
	routeRoot            = "/"
	routeNewNotification = "/notifications/new"
	routeProfile         = "/profile"

	notificationsPrefix = "/notifications/"
	editSuffix          = "/edit"
)

type screen int

const (
	screenLoading screen = iota
	screenAuth
	screenHome
	screenNotificationForm
	screenProfile
)

func editNotificationRoute(id string) string {
	return notificationsPrefix + url.PathEscape(id) + editSuffix
}

// resolve maps a route onto a screen. Without a session every route leads
// to the auth screen; unknown routes lead home. For edit routes the
// notification id is returned as well.
func resolve(path string, authenticated bool) (screen, string) {
	if !authenticated {
		return screenAuth, ""
	}

	switch path {
	case routeRoot:
		return screenHome, ""
	case routeNewNotification:
		return screenNotificationForm, ""
	case routeProfile:
		return screenProfile, ""
	}

	if strings.HasPrefix(path, notificationsPrefix) && strings.HasSuffix(path, editSuffix) {
		raw := strings.TrimSuffix(strings.TrimPrefix(path, notificationsPrefix), editSuffix)
		id, err := url.PathUnescape(raw)
		if err == nil && id != "" && !strings.Contains(raw, "/") {
			return screenNotificationForm, id
		}
	}

	return screenHome, ""
}
