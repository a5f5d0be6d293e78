package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines the nav mode keybindings.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PrevTab      key.Binding
	NextTab      key.Binding
	PrevSlide    key.Binding
	NextSlide    key.Binding
	Select       key.Binding
	Back         key.Binding
	Bottom       key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	Home         key.Binding
	Events       key.Binding
	Categories   key.Binding
	Places       key.Binding
	Add          key.Binding
	Reload       key.Binding
	Logout       key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
	Help         key.Binding
	NextColumn   key.Binding
	PrevColumn   key.Binding
	SortAsc      key.Binding
	SortDesc     key.Binding
	HideColumn   key.Binding
	ShowColumns  key.Binding
	FilterValue  key.Binding
	ClearFilter  key.Binding
	ColumnJump   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "sobe")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "desce")),
		PrevTab:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "aba anterior")),
		NextTab:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "próxima aba")),
		PrevSlide:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "slide anterior")),
		NextSlide:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "próximo slide")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detalhes")),
		Back:         key.NewBinding(key.WithKeys("esc", "b", "h"), key.WithHelp("esc/h", "voltar")),
		Bottom:       key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "fim")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ página abaixo")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ página acima")),
		Home:         key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "início")),
		Events:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "eventos")),
		Categories:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "categorias")),
		Places:       key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "locais")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "cadastrar")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
		Logout:       key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "sair")),
		Dismiss:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "fechar aviso")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "encerrar")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ajuda")),
		NextColumn:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próx. coluna")),
		PrevColumn:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "coluna ant.")),
		SortAsc:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ordenar asc")),
		SortDesc:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "ordenar desc")),
		HideColumn:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "ocultar coluna")),
		ShowColumns:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "mostrar colunas")),
		FilterValue:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "filtrar valor")),
		ClearFilter:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "limpar filtro")),
		ColumnJump:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "ir p/ coluna")),
	}
}

// FormKeyMap defines keybindings for insert mode.
type FormKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	PrevOpt   key.Binding
	NextOpt   key.Binding
	Save      key.Binding
	Cancel    key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "próximo campo")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "campo anterior")),
		PrevOpt:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "opção anterior")),
		NextOpt:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "próxima opção")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "cadastrar")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}
