package ui

import (
	"errors"
	"log"
	"strings"

	"pg360/internal/auth"
	"pg360/internal/model"
	"pg360/internal/storage"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginResultMsg struct {
	user string
	err  error
}

// LoginModel is the admin login screen.
type LoginModel struct {
	inputs  []textinput.Model
	focused int
	error   string
	pending bool
}

// NewLoginModel creates the login form.
func NewLoginModel() *LoginModel {
	user := textinput.New()
	user.Placeholder = "usuário"
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "senha"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return &LoginModel{inputs: []textinput.Model{user, pass}}
}

// Update handles input. Enter on the password field (or ctrl+s) submits.
func (m LoginModel) Update(msg tea.Msg, creds *auth.Credentials, kv storage.KV) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.pending = false
		if msg.err != nil {
			if errors.Is(msg.err, auth.ErrBadCredentials) {
				m.error = "Usuário ou senha inválidos."
			} else {
				log.Printf("auth: %v", msg.err)
				m.error = "Não foi possível verificar as credenciais."
			}
			m.inputs[1].Reset()
			return m, nil
		}
		m.error = ""
		user := msg.user
		return m, func() tea.Msg { return model.LoggedInMsg{User: user} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focused].Blur()
			m.focused = 1 - m.focused
			m.inputs[m.focused].Focus()
			return m, nil
		case "enter", "ctrl+s":
			if msg.String() == "enter" && m.focused == 0 {
				m.inputs[0].Blur()
				m.focused = 1
				m.inputs[1].Focus()
				return m, nil
			}
			if m.pending {
				return m, nil
			}
			m.pending = true
			return m, loginCmd(creds, kv, strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
		}
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

// loginCmd verifies the credentials and stores the login flag on success.
func loginCmd(creds *auth.Credentials, kv storage.KV, user, password string) tea.Cmd {
	return func() tea.Msg {
		if err := creds.Verify(user, password); err != nil {
			return loginResultMsg{user: user, err: err}
		}
		if creds == nil {
			log.Printf("auth: login for %q accepted without a credential file", user)
		}
		if err := auth.MarkLoggedIn(kv); err != nil {
			return loginResultMsg{user: user, err: err}
		}
		return loginResultMsg{user: user}
	}
}

// View renders the login box centered on screen.
func (m *LoginModel) View(width, height int) string {
	parts := []string{
		FormTitleStyle.Render("Área administrativa"),
		renderFormField("Usuário", m.inputs[0].View(), m.focused == 0),
		renderFormField("Senha", m.inputs[1].View(), m.focused == 1),
	}
	if m.pending {
		parts = append(parts, BusyStyle.Render("Verificando..."))
	}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Render(m.error))
	}
	parts = append(parts, HelpDescStyle.Render("enter entrar  ·  ctrl+c sair"))

	box := PanelStyle.Width(min(50, max(20, width-4))).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
