package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"pg360/internal/api"
	"pg360/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	carouselSize  = 4
	carouselDelay = 3500 * time.Millisecond
)

type carouselTickMsg struct {
	seq int
}

type carouselImageMsg struct {
	eventID int64
	art     string
	err     error
}

// CarouselModel shows the first events on the home screen, advancing on a
// timer and looping.
type CarouselModel struct {
	events  []model.Event
	images  map[int64]string
	index   int
	seq     int
	loading bool
	failed  bool
	spinner spinner.Model
	delay   time.Duration
}

// NewCarouselModel creates an empty carousel. Nothing is fetched until Init.
func NewCarouselModel() *CarouselModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &CarouselModel{
		images:  make(map[int64]string),
		spinner: sp,
		delay:   carouselDelay,
	}
}

// Init starts the spinner and the events fetch.
func (m *CarouselModel) Init(client *api.Client) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, loadCarouselCmd(client))
}

// Reset drops the slides and invalidates any pending tick.
func (m *CarouselModel) Reset() {
	m.seq++
	m.events = nil
	m.images = make(map[int64]string)
	m.index = 0
	m.failed = false
	m.loading = false
}

// Stale reports whether the slides need fetching again.
func (m *CarouselModel) Stale() bool {
	return !m.loading && (m.failed || len(m.events) == 0)
}

// Update handles carousel messages.
func (m *CarouselModel) Update(client *api.Client, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case model.CarouselLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.failed = true
			return nil
		}
		m.failed = false
		m.events = msg.Events
		m.index = 0
		cmds := []tea.Cmd{m.schedule()}
		for _, e := range m.events {
			if url := e.FirstImage(); url != "" {
				cmds = append(cmds, fetchSlideImageCmd(client, e.ID, url))
			}
		}
		return tea.Batch(cmds...)

	case carouselTickMsg:
		if msg.seq != m.seq || len(m.events) == 0 {
			return nil
		}
		m.index = (m.index + 1) % len(m.events)
		return m.schedule()

	case carouselImageMsg:
		if msg.err != nil {
			log.Printf("carousel: image for event %d: %v", msg.eventID, msg.err)
			return nil
		}
		m.images[msg.eventID] = msg.art
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

// Next moves to the following slide and restarts the timer.
func (m *CarouselModel) Next() tea.Cmd {
	if len(m.events) == 0 {
		return nil
	}
	m.index = (m.index + 1) % len(m.events)
	return m.schedule()
}

// Prev moves to the previous slide and restarts the timer.
func (m *CarouselModel) Prev() tea.Cmd {
	if len(m.events) == 0 {
		return nil
	}
	m.index = (m.index - 1 + len(m.events)) % len(m.events)
	return m.schedule()
}

// schedule invalidates pending ticks and starts a new one.
func (m *CarouselModel) schedule() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return carouselTickMsg{seq: seq}
	})
}

// View renders the current slide.
func (m *CarouselModel) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if m.loading {
		body := m.spinner.View() + " " + HelpDescStyle.Render("Buscando eventos...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.failed || len(m.events) == 0 {
		msg := "Nenhum evento para exibir."
		if m.failed {
			msg = "Não foi possível buscar os eventos. Pressione  r  para tentar de novo."
		}
		return EmptyStateStyle.Width(width).Height(height).Render(msg)
	}

	e := m.events[m.index]
	art, ok := m.images[e.ID]
	if !ok {
		art = imagePlaceholder(e.FirstImage() != "")
	}

	dots := make([]string, len(m.events))
	for i := range m.events {
		if i == m.index {
			dots[i] = ActiveDotStyle.Render("●")
		} else {
			dots[i] = DotStyle.Render("○")
		}
	}

	slide := lipgloss.JoinVertical(lipgloss.Center,
		art,
		"",
		SlideTitleStyle.Render(e.Name),
		HelpDescStyle.Render(e.Description),
		"",
		strings.Join(dots, " "),
	)
	return center.Height(height).Render(slide)
}

func imagePlaceholder(hasImage bool) string {
	text := "Sem Imagem"
	if hasImage {
		text = "carregando imagem..."
	}
	return lipgloss.Place(slideImageWidth, slideImageHeight, lipgloss.Center, lipgloss.Center,
		HelpDescStyle.Render(text),
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(ColorSurface))
}

func loadCarouselCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		events, err := client.ListEvents(context.Background())
		if err != nil {
			log.Printf("Erro ao buscar eventos: %v", err)
			return model.CarouselLoadedMsg{Err: err}
		}
		if len(events) > carouselSize {
			events = events[:carouselSize]
		}
		return model.CarouselLoadedMsg{Events: events}
	}
}

func fetchSlideImageCmd(client *api.Client, eventID int64, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := client.FetchImage(context.Background(), url)
		if err != nil {
			return carouselImageMsg{eventID: eventID, err: err}
		}
		return carouselImageMsg{eventID: eventID, art: renderImage(img, slideImageWidth, slideImageHeight)}
	}
}
