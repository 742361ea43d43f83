package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/forms"
	"github.com/Bessima/i2test-auth/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	loginScreen screen = iota
	registerScreen
)

// submittedMsg приходит из горутины отправки; source - форма, которая отправляла
type submittedMsg struct {
	source any
	err    error
}

type field struct {
	label       string
	placeholder string
	password    bool
}

var (
	loginFields = []field{
		{label: "Username", placeholder: "Enter your username"},
		{label: "Password", placeholder: "Enter your password", password: true},
	}
	registerFields = []field{
		{label: "Username", placeholder: "Choose a username"},
		{label: "Password", placeholder: "Minimum 8 characters", password: true},
		{label: "Confirm password", placeholder: "Repeat your password", password: true},
	}
)

type Model struct {
	ctx     context.Context
	client  authapi.AuthClientI
	storage forms.TokenWriterI

	screen   screen
	login    *forms.LoginForm
	register *forms.RegisterForm

	fields  []field
	inputs  []textinput.Model
	focus   int
	pending bool
	// notice переносит сообщение об успешной регистрации на экран входа
	notice string
}

func New(ctx context.Context, client authapi.AuthClientI, storage forms.TokenWriterI) Model {
	m := Model{ctx: ctx, client: client, storage: storage}
	m.mount(loginScreen)
	return m
}

func Run(ctx context.Context, client authapi.AuthClientI, storage forms.TokenWriterI) error {
	final, err := tea.NewProgram(New(ctx, client, storage), tea.WithContext(ctx)).Run()
	if m, ok := final.(Model); ok {
		m.unmount()
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// mount создаёт новую форму для экрана, старая закрывается
func (m *Model) mount(s screen) {
	m.unmount()
	m.screen = s
	m.focus = 0
	m.pending = false

	switch s {
	case loginScreen:
		m.login = forms.NewLoginForm(m.client, m.storage)
		m.fields = loginFields
	case registerScreen:
		m.register = forms.NewRegisterForm(m.client)
		m.fields = registerFields
	}

	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.Prompt = "> "
		if f.password {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		m.inputs[i] = input
	}
	m.focusInput(0)
}

func (m *Model) unmount() {
	if m.login != nil {
		m.login.Close()
		m.login = nil
	}
	if m.register != nil {
		m.register.Close()
		m.register = nil
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return m.handleSubmitted(msg), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.unmount()
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+r":
			m.togglePasswordVisibility()
			return m, nil
		case "ctrl+n":
			if m.screen == loginScreen {
				m.mount(registerScreen)
			} else {
				m.mount(loginScreen)
			}
			m.notice = ""
			return m, textinput.Blink
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	m.syncForm()
	return tea.Batch(cmds...)
}

func (m *Model) syncForm() {
	switch m.screen {
	case loginScreen:
		m.login.SetUsername(m.inputs[0].Value())
		m.login.SetPassword(m.inputs[1].Value())
	case registerScreen:
		m.register.SetUsername(m.inputs[0].Value())
		m.register.SetPassword(m.inputs[1].Value())
		m.register.SetConfirmPassword(m.inputs[2].Value())
	}
}

// submit ничего не делает, пока предыдущая отправка не завершилась
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	m.pending = true
	ctx := m.ctx

	switch m.screen {
	case loginScreen:
		form := m.login
		return m, func() tea.Msg {
			_, err := form.Submit(ctx)
			return submittedMsg{source: form, err: err}
		}
	default:
		form := m.register
		return m, func() tea.Msg {
			return submittedMsg{source: form, err: form.Submit(ctx)}
		}
	}
}

func (m Model) handleSubmitted(msg submittedMsg) Model {
	if msg.source != m.currentForm() || errors.Is(msg.err, forms.ErrFormClosed) {
		return m
	}
	if errors.Is(msg.err, forms.ErrSubmissionPending) {
		return m
	}
	m.pending = false
	m.notice = ""

	if m.screen == registerScreen && msg.err == nil && m.register.Redirect() == forms.RouteLogin {
		notice := m.register.Message()
		m.mount(loginScreen)
		m.notice = notice
	}
	return m
}

func (m Model) currentForm() any {
	if m.screen == loginScreen {
		return m.login
	}
	return m.register
}

func (m *Model) togglePasswordVisibility() {
	var visible bool
	if m.screen == loginScreen {
		visible = m.login.TogglePasswordVisibility()
	} else {
		visible = m.register.TogglePasswordVisibility()
	}
	for i, f := range m.fields {
		if !f.password {
			continue
		}
		if visible {
			m.inputs[i].EchoMode = textinput.EchoNormal
		} else {
			m.inputs[i].EchoMode = textinput.EchoPassword
		}
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	next := (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.unfocusInput(m.focus)
	return m.focusInput(next)
}

func (m *Model) focusInput(index int) tea.Cmd {
	m.focus = index
	m.inputs[index].PromptStyle = focusedStyle
	m.inputs[index].TextStyle = focusedStyle
	return m.inputs[index].Focus()
}

func (m *Model) unfocusInput(index int) {
	m.inputs[index].Blur()
	m.inputs[index].PromptStyle = noStyle
	m.inputs[index].TextStyle = noStyle
}

func (m Model) state() (models.SubmissionState, string) {
	if m.screen == loginScreen {
		return m.login.State(), m.login.Message()
	}
	return m.register.State(), m.register.Message()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(brandStyle.Render("I2Test"))
	b.WriteRune('\n')

	title, subtitle, button, pendingButton, link := m.texts()
	b.WriteString(titleStyle.Render(title))
	b.WriteRune('\n')
	b.WriteString(subtitleStyle.Render(subtitle))
	b.WriteString("\n\n")

	state, message := m.state()
	switch {
	case message != "" && state == models.SucceededState:
		b.WriteString(successStyle.Render(message))
	case message != "":
		b.WriteString(errorStyle.Render(message))
	case m.notice != "":
		b.WriteString(successStyle.Render(m.notice))
	}
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.fields[i].label)
		b.WriteRune('\n')
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.pending {
		fmt.Fprintf(&b, "%s\n\n", disabledStyle.Render("[ "+pendingButton+" ]"))
	} else {
		fmt.Fprintf(&b, "%s\n\n", focusedStyle.Render("[ "+button+" ]"))
	}

	b.WriteString(subtitleStyle.Render(link))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render("tab next field • ctrl+r show/hide password • enter submit • esc quit"))
	b.WriteRune('\n')

	return b.String()
}

func (m Model) texts() (title, subtitle, button, pendingButton, link string) {
	if m.screen == loginScreen {
		return "Sign in to the platform",
			"Welcome back! Please enter your details.",
			"Login",
			"Logging in…",
			"Don’t have an account? ctrl+n to create one"
	}
	return "Create your account",
		"Join the platform and start exploring.",
		"Create account",
		"Creating account…",
		"Already have an account? ctrl+n to sign in"
}
