package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// validateAPIURL accepts absolute http(s) URLs.
func validateAPIURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API URL %q: expected http(s)://host[:port]", raw)
	}
	return nil
}

type onboardingStep int

const (
	stepURL onboardingStep = iota
	stepDone
)

type onboardingModel struct {
	step     onboardingStep
	input    textinput.Model
	fallback string
	apiURL   string
	status   string
	problem  string
	canceled bool
	width    int
	height   int
}

var (
	obColorMuted  = lipgloss.Color("#7A8B99")
	obColorText   = lipgloss.Color("#E6F2FA")
	obColorAccent = lipgloss.Color("#1D91CE")
	obColorDanger = lipgloss.Color("#f38ba8")

	obTitleStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorMuted).
			Padding(1, 2)

	obInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorAccent).
			Padding(0, 1)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(obColorMuted)

	obWarnStyle = lipgloss.NewStyle().
			Foreground(obColorDanger)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(obColorMuted)
)

func newOnboardingModel(fallback string) onboardingModel {
	in := textinput.New()
	in.Placeholder = fallback
	in.CharLimit = 300
	in.Prompt = "api> "
	in.TextStyle = lipgloss.NewStyle().Foreground(obColorText)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(obColorMuted)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(obColorText).Background(obColorAccent)
	in.Focus()

	return onboardingModel{
		step:     stepURL,
		input:    in,
		fallback: fallback,
	}
}

func (m onboardingModel) Init() tea.Cmd { return textinput.Blink }

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.step != stepURL {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				raw = m.fallback
			}
			if err := validateAPIURL(raw); err != nil {
				m.problem = "Informe uma URL http(s) completa, por exemplo http://localhost:8080"
				return m, nil
			}
			m.apiURL = strings.TrimRight(raw, "/")
			m.status = "API configurada: " + m.apiURL
			m.step = stepDone
			return m, tea.Quit
		case "esc":
			m.apiURL = m.fallback
			m.status = "Usando a API padrão: " + m.fallback
			m.step = stepDone
			return m, tea.Quit
		case "ctrl+c":
			m.canceled = true
			m.step = stepDone
			return m, tea.Quit
		}
		m.problem = ""
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m onboardingModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	content := m.renderContent(width, max(8, height-4))
	ui := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	return lipgloss.NewStyle().
		Foreground(obColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m onboardingModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("pg360 admin") + " " + obMutedStyle.Render("› Configuração")
	right := obMutedStyle.Render(time.Now().Format("02/01/2006")) + "  "
	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m onboardingModel) renderFooter(width int) string {
	if m.step == stepURL {
		return obFooterStyle.Width(width).Render("enter salvar  esc usar padrão  ctrl+c cancelar")
	}
	return obFooterStyle.Width(width).Render("Configuração concluída")
}

func (m onboardingModel) renderContent(width, height int) string {
	cardWidth := min(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepURL:
		input := obInputStyle.Width(max(30, cardWidth-14)).Render(m.input.View())
		parts := []string{
			obLabelStyle.Render("Endereço da API de eventos"),
			"",
			obMutedStyle.Render("Os cadastros de categorias, eventos e locais são enviados para esta API."),
			obMutedStyle.Render("Deixe em branco para usar " + m.fallback + "."),
			"",
			input,
		}
		if m.problem != "" {
			parts = append(parts, "", obWarnStyle.Render(m.problem))
		}
		parts = append(parts, "", obMutedStyle.Render("Você pode alterar depois em ~/.pg360/config.yaml"))
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Configuração concluída"), "", obMutedStyle.Render(m.status))
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

var errOnboardingCanceled = errors.New("setup canceled")

func runOnboarding(fallback string) (string, error) {
	prog := tea.NewProgram(newOnboardingModel(fallback), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("onboarding tui failed: %w", err)
	}
	m, ok := finalModel.(onboardingModel)
	if !ok {
		return "", fmt.Errorf("unexpected onboarding model type")
	}
	if m.canceled {
		return "", errOnboardingCanceled
	}
	return m.apiURL, nil
}
