package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	registerUsername = iota
	registerFullName
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders five
// text inputs (username, full name, e-mail, password and password confirmation) and
// dispatches an async registration command on form submission.
// On success the model resets the form and navigates back to the menu, passing a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx  context.Context
	auth adapter.ServerAdapter

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			formField{label: "Логин", placeholder: "username", charLimit: 64},
			formField{label: "Имя", placeholder: "full name", charLimit: 255},
			formField{label: "E-mail", placeholder: "email", charLimit: 255},
			formField{label: "Пароль", placeholder: "password", charLimit: 72, secret: true},
			formField{label: "Повтор пароля", placeholder: "repeat password", charLimit: 72, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. All fields are required and the passwords
// must match before the request is sent; the server validates the rest.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			request := models.RegisterRequest{
				Username: strings.TrimSpace(m.form.value(registerUsername)),
				FullName: strings.TrimSpace(m.form.value(registerFullName)),
				Email:    strings.TrimSpace(m.form.value(registerEmail)),
				Password: m.form.value(registerPassword),
			}
			if request.Username == "" || request.FullName == "" || request.Email == "" || request.Password == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if request.Password != m.form.value(registerRepeat) {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(request)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(request models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, request)
		return RegisterResult{Err: err, Username: user.Username}
	}
}
