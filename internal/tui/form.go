package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one text input of a form.
type formField struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// form is a column of labelled text inputs with tab navigation.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.CharLimit = field.charLimit
		input.Width = 40
		if field.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}

		f.labels[i] = field.label
		f.inputs[i] = input
	}
	f.inputs[0].Focus()

	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the form as a two-column table.
func (f *form) view() string {
	labelWidth := len([]rune("Поле"))
	for _, l := range f.labels {
		if w := len([]rune(l)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(padRight("Поле", labelWidth))
	b.WriteString(" │ Значение\n")
	b.WriteString(strings.Repeat("─", labelWidth+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, input := range f.inputs {
		b.WriteString(padRight(f.labels[i], labelWidth))
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	return b.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
