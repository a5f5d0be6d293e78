package ui

import (
	"strconv"
	"strings"

	"pg360/internal/model"
	"pg360/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// EventDetailModel represents the event detail screen.
type EventDetailModel struct {
	event model.Event
}

// NewEventDetailModel creates a new event detail model.
func NewEventDetailModel(event model.Event) *EventDetailModel {
	return &EventDetailModel{event: event}
}

// View renders the event detail.
func (m *EventDetailModel) View(width, height int) string {
	e := m.event

	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(HelpDescStyle.Render("h voltar"))

	fields := []string{
		renderField("Código", strconv.FormatInt(e.ID, 10)),
		renderField("Nome", e.Name),
		renderField("Período", util.FormatDateRange(e.StartDate, e.EndDate)),
	}
	if e.Category != nil {
		fields = append(fields, renderField("Categoria", e.Category.Name))
	} else {
		fields = append(fields, renderField("Categoria", ""))
	}
	if e.Place != nil {
		fields = append(fields,
			renderField("Local", e.Place.Name),
			renderField("Endereço", e.Place.Address),
			renderField("Coordenadas", util.FormatCoordinate(e.Place.Latitude)+", "+util.FormatCoordinate(e.Place.Longitude)),
		)
	} else {
		fields = append(fields, renderField("Local", ""))
	}

	sections := []string{strings.Join(fields, "\n")}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", max(0, width-8))))

	if e.Description != "" {
		sections = append(sections, LabelStyle.Render("Descrição:"), NormalRowStyle.Render(e.Description))
	} else {
		sections = append(sections, HelpDescStyle.Render("Sem descrição."))
	}

	if len(e.Images) > 0 {
		sections = append(sections, LabelStyle.Render("Imagens:"), HelpDescStyle.Render(strings.Join(e.Images, "\n")))
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}
