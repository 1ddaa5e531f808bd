package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// SessionModel shows the logged-in user and manages the session: refreshing
// the token pair, copying the access token and logging out.
type SessionModel struct {
	ctx       context.Context
	auth      adapter.ServerAdapter
	clipboard Clipboard
	logger    *logger.Logger

	user    models.User
	loading bool
	status  string
	errMsg  string
}

func NewSessionModel(ctx context.Context, auth adapter.ServerAdapter, clipboard Clipboard, logger *logger.Logger) *SessionModel {
	return &SessionModel{
		ctx:       ctx,
		auth:      auth,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Init loads the current user every time the page is opened.
func (m *SessionModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, m.leaveIfSessionLost(msg.err)
		}
		m.user = msg.user
		return m, nil

	case refreshDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, m.leaveIfSessionLost(msg.err)
		}
		m.status = "Токены обновлены"
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать токен: " + msg.err.Error()
			return m, nil
		}
		m.status = "Access token скопирован в буфер обмена"
		return m, nil

	case logoutDoneMsg:
		m.loading = false
		m.user = models.User{}
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("logout request failed, local session dropped")
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		m.status = ""
		m.errMsg = ""

		switch {
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, m.cmdRefresh()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.logout):
			m.loading = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *SessionModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case m.user.UserID != 0:
		fmt.Fprintf(&b, "ID       │ %d\n", m.user.UserID)
		fmt.Fprintf(&b, "Логин    │ %s\n", m.user.Username)
		fmt.Fprintf(&b, "Имя      │ %s\n", m.user.FullName)
		fmt.Fprintf(&b, "E-mail   │ %s\n", m.user.Email)
		fmt.Fprintf(&b, "Токен    │ %s\n", fitText(m.auth.Tokens().AccessToken, 40))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("СЕССИЯ", strings.TrimRight(b.String(), "\n"), "r: обновить токены │ c: копировать токен │ l: выйти из аккаунта │ q: закрыть")
}

// leaveIfSessionLost returns to the menu when the server no longer accepts
// the held tokens.
func (m *SessionModel) leaveIfSessionLost(err error) tea.Cmd {
	if !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrNoSession) {
		return nil
	}
	return func() tea.Msg { return NavigateTo{Page: pageMenu} }
}

func (m *SessionModel) cmdLoad() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.CurrentUser(ctx)
		return sessionLoadedMsg{user: user, err: err}
	}
}

func (m *SessionModel) cmdRefresh() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		_, err := auth.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func (m *SessionModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m *SessionModel) cmdCopy() tea.Cmd {
	token, cb := m.auth.Tokens().AccessToken, m.clipboard
	return func() tea.Msg {
		return copiedMsg{err: cb.WriteAll(token)}
	}
}
