package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	// page is empty for the exit item.
	page string
}

// MenuModel is the start page listing the available actions.
type MenuModel struct {
	items  []menuItem
	cursor int
	notice string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Войти", page: pageLogin},
			{title: "Зарегистрироваться", page: pageRegister},
			{title: "Выйти"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.notice = "Регистрация прошла успешно"
		if msg.Username != "" {
			m.notice = "Пользователь " + msg.Username + " успешно зарегистрирован"
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, keys.down):
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case key.Matches(msg, keys.enter):
			item := m.items[m.cursor]
			if item.page == "" {
				return m, tea.Quit
			}
			return m, func() tea.Msg { return NavigateTo{Page: item.page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(statusStyle.Render("OK: " + m.notice))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		marker := " "
		if i == m.cursor {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d │ %s\n", marker, i+1, item.title)
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
