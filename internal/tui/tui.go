// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the job-alerts client.
//
// A single bubbletea program routes between the auth screen, the list of
// notifications, the notification form and the profile form. Routes follow
// the web client: /, /notifications/new, /notifications/{id}/edit and
// /profile.
package tui

import (
	"context"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	ui        config.ClientUI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, ui config.ClientUI, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, ui: ui, buildInfo: buildInfo, logger: logger}
}

// Run restores the stored session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, utils.NewClientIDGenerator(),
		uiSettings{saveRedirectDelay: t.ui.SaveRedirectDelay}, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
