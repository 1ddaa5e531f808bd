package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

// execute runs cmd and returns the produced message.
func execute(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestLoginModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockServerAdapter(ctrl))

	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)
}

func TestLoginModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockServerAdapter(ctrl)
	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "alice", Password: "pw123!"}).
		Return(models.LoginResult{User: models.User{UserID: 1}}, nil)

	m := NewLoginModel(context.Background(), auth)
	m.form.inputs[0].SetValue(" alice ")
	m.form.inputs[1].SetValue("pw123!")

	_, cmd := m.Update(enterKey)
	assert.True(t, m.submitting)

	result := execute(t, cmd)
	_, cmd = m.Update(result)

	assert.False(t, m.submitting)
	assert.Empty(t, m.form.value(0))
	assert.Equal(t, NavigateTo{Page: pageSession}, execute(t, cmd))
}

func TestLoginModel_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockServerAdapter(ctrl))
	m.submitting = true

	_, cmd := m.Update(LoginResult{Err: fmt.Errorf("%w: invalid user credentials", adapter.ErrUnauthorized)})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.errMsg, "invalid user credentials")
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockServerAdapter(ctrl))
	m.form.inputs[registerUsername].SetValue("alice")
	m.form.inputs[registerFullName].SetValue("Alice")
	m.form.inputs[registerEmail].SetValue("alice@example.com")
	m.form.inputs[registerPassword].SetValue("pw123!")
	m.form.inputs[registerRepeat].SetValue("pw123?")

	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}

func TestRegisterModel_SuccessReturnsToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockServerAdapter(ctrl)
	auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Username: "alice", FullName: "Alice", Email: "alice@example.com", Password: "pw123!",
	}).Return(models.User{UserID: 1, Username: "alice"}, nil)

	m := NewRegisterModel(context.Background(), auth)
	m.form.inputs[registerUsername].SetValue("alice")
	m.form.inputs[registerFullName].SetValue("Alice")
	m.form.inputs[registerEmail].SetValue("alice@example.com")
	m.form.inputs[registerPassword].SetValue("pw123!")
	m.form.inputs[registerRepeat].SetValue("pw123!")

	_, cmd := m.Update(enterKey)
	_, cmd = m.Update(execute(t, cmd))

	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "alice"}}, execute(t, cmd))
}

func TestSessionModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockServerAdapter(ctrl)
	auth.EXPECT().CurrentUser(gomock.Any()).Return(models.User{UserID: 7, Username: "alice"}, nil)
	auth.EXPECT().Tokens().Return(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}).AnyTimes()
	auth.EXPECT().Refresh(gomock.Any()).Return(models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	cb := &fakeClipboard{}
	m := NewSessionModel(context.Background(), auth, cb, logger.Nop())

	m.Update(execute(t, m.Init()))
	assert.Equal(t, "alice", m.user.Username)
	assert.Contains(t, m.View(), "alice")

	_, cmd := m.Update(runeKey('c'))
	m.Update(execute(t, cmd))
	assert.Equal(t, "a1", cb.text)
	assert.NotEmpty(t, m.status)

	_, cmd = m.Update(runeKey('r'))
	assert.True(t, m.loading)
	m.Update(execute(t, cmd))
	assert.False(t, m.loading)
	assert.Empty(t, m.errMsg)

	_, cmd = m.Update(runeKey('l'))
	_, cmd = m.Update(execute(t, cmd))
	assert.Equal(t, NavigateTo{Page: pageMenu}, execute(t, cmd))
	assert.Zero(t, m.user.UserID)
}

func TestSessionModel_LostSessionReturnsToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockServerAdapter(ctrl)
	auth.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, adapter.ErrNoSession)

	m := NewSessionModel(context.Background(), auth, &fakeClipboard{}, logger.Nop())

	_, cmd := m.Update(execute(t, m.Init()))

	assert.Equal(t, NavigateTo{Page: pageMenu}, execute(t, cmd))
}

func TestRootModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), mock.NewMockServerAdapter(ctrl)),
	}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))

	updated, _ := root.Update(runeKey('v'))
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "1.0.0")

	updated, _ = root.Update(escKey)
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)

	updated, _ = root.Update(NavigateTo{Page: pageLogin})
	root = updated.(RootModel)
	assert.IsType(t, &LoginModel{}, root.current)

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	root = updated.(RootModel)
	assert.IsType(t, &LoginModel{}, root.current)

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = updated.(RootModel)
	assert.True(t, root.quitByUser)
	assert.NotNil(t, cmd)
}

func TestMenuModel_RegisterNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(RegisterSuccessNotice{Username: "alice"})
	assert.Contains(t, m.View(), "alice")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(enterKey)
	assert.Equal(t, NavigateTo{Page: pageRegister}, execute(t, cmd))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "Сессия не найдена, войдите снова", humanizeError(adapter.ErrNoSession))
	assert.Equal(t, msgConflict, humanizeError(fmt.Errorf("register: %w", adapter.ErrConflict)))
	assert.Equal(t, msgUnreachable, humanizeError(fmt.Errorf("login: %w", context.DeadlineExceeded)))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}
