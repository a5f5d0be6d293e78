package ui

import (
	"strings"

	"pg360/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(keys KeyMap, formKeys FormKeyMap, screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderHelpLine(width, formKeys.NextField, formKeys.PrevField, formKeys.NextOpt, formKeys.Save, formKeys.Cancel, keys.Dismiss)
	}

	switch screen {
	case model.ScreenLogin:
		return renderHelpLine(width)
	case model.ScreenHome:
		return renderHelpLine(width, keys.PrevSlide, keys.NextSlide, keys.NextTab, keys.Reload, keys.Logout, keys.Help, keys.Quit)
	case model.ScreenEvents:
		return renderHelpLine(width, keys.Down, keys.Select, keys.Add, keys.NextColumn, keys.SortAsc, keys.FilterValue, keys.NextTab, keys.Help)
	case model.ScreenCategories, model.ScreenPlaces:
		return renderHelpLine(width, keys.Down, keys.Add, keys.NextColumn, keys.SortAsc, keys.HideColumn, keys.FilterValue, keys.NextTab, keys.Help)
	case model.ScreenEventDetail:
		return renderHelpLine(width, keys.Back, keys.Help)
	default:
		return renderHelpLine(width, keys.Help, keys.Quit)
	}
}

func helpKey(b key.Binding) string {
	h := b.Help()
	return HelpKeyStyle.Render(h.Key) + " " + HelpDescStyle.Render(h.Desc)
}

func renderHelpLine(width int, bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, helpKey(b))
	}
	return FooterStyle.Width(width).Render(strings.Join(parts, "  "))
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(keys KeyMap, formKeys FormKeyMap, width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navegação"),
		helpSection(keys.Home, keys.Events, keys.Categories, keys.Places, keys.PrevTab, keys.NextTab,
			keys.Up, keys.Down, keys.Bottom, keys.HalfPageDown, keys.HalfPageUp, keys.Select, keys.Back),
		titleSection("Início"),
		helpSection(keys.PrevSlide, keys.NextSlide, keys.Reload),
		titleSection("Listas"),
		helpSection(keys.Add, keys.Reload, keys.NextColumn, keys.PrevColumn, keys.ColumnJump,
			keys.SortAsc, keys.SortDesc, keys.HideColumn, keys.ShowColumns, keys.FilterValue, keys.ClearFilter),
		titleSection("Formulários"),
		helpSection(formKeys.NextField, formKeys.PrevField, formKeys.PrevOpt, formKeys.NextOpt, formKeys.Save, formKeys.Cancel),
		titleSection("Geral"),
		helpSection(keys.Dismiss, keys.Logout, keys.Help, keys.Quit),
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Ajuda"),
		content.Render(strings.Join(sections, "\n\n")),
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("fechar ajuda")),
	)
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(bindings ...key.Binding) string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, "  "+HelpKeyStyle.Render(h.Key)+" - "+HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(lines, "\n")
}
