package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err    error
	Result models.LoginResult
}

// RegisterResult is produced by the registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type sessionLoadedMsg struct {
	user models.User
	err  error
}

type refreshDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
