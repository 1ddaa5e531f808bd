package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageSession  = "session"
)

// RootModel routes messages to the active page. It owns the keys that work
// everywhere (ctrl+c, the build info window on the menu) and switches pages
// on [NavigateTo].
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.abort) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			// the window swallows keys until it is closed
			if key.Matches(msg, keys.esc, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if _, onMenu := r.current.(*MenuModel); onMenu && key.Matches(msg, keys.version) {
			r.showBuildInfo = true
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.current = next
	r.showBuildInfo = false

	cmd := r.current.Init()
	if nav.Payload != nil {
		payload := nav.Payload
		cmd = tea.Batch(cmd, func() tea.Msg { return payload })
	}
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("TUI", "", "")
	default:
		return r.current.View()
	}
}
