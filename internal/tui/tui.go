// Package tui implements the terminal client of go-auth-keeper on top of
// Bubble Tea: a menu, login and registration forms and a session screen.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.ServerAdapter
	clipboard Clipboard
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		adapter:   serverAdapter,
		clipboard: systemClipboard{},
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the UI until the user quits. The session, if any, is left
// intact on the adapter.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.adapter),
		pageRegister: NewRegisterModel(ctx, t.adapter),
		pageSession:  NewSessionModel(ctx, t.adapter, t.clipboard, t.logger),
	}
	return NewRootModel(pages, pageMenu, t.buildInfo)
}
