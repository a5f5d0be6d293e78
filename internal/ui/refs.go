package ui

import (
	"context"
	"log"

	"pg360/internal/api"
	"pg360/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// refKind names a reference list a form loads on mount.
type refKind int

const (
	refCategories refKind = iota
	refPlaces
)

const (
	msgCategoriesUnavailable = "Não foi possível carregar a lista de categorias."
	msgPlacesUnavailable     = "Não foi possível carregar a lista de locais."
)

func (k refKind) failureText() string {
	if k == refPlaces {
		return msgPlacesUnavailable
	}
	return msgCategoriesUnavailable
}

func (k refKind) String() string {
	if k == refPlaces {
		return "places"
	}
	return "categories"
}

// refsLoadedMsg carries one reference list back to the form that asked.
type refsLoadedMsg struct {
	formID  string
	kind    refKind
	options []model.ReferenceOption
	err     error
}

// loadRefsCmd fetches one reference list. Each list is loaded on its own so
// a failure of one never blocks the other.
func loadRefsCmd(client *api.Client, formID string, kind refKind) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch kind {
		case refPlaces:
			places, err := client.ListPlaces(ctx)
			if err != nil {
				log.Printf("erro técnico: load %s for form %s: %v", kind, formID, err)
				return refsLoadedMsg{formID: formID, kind: kind, err: err}
			}
			return refsLoadedMsg{formID: formID, kind: kind, options: model.PlaceOptions(places)}
		default:
			categories, err := client.ListCategories(ctx)
			if err != nil {
				log.Printf("erro técnico: load %s for form %s: %v", kind, formID, err)
				return refsLoadedMsg{formID: formID, kind: kind, err: err}
			}
			return refsLoadedMsg{formID: formID, kind: kind, options: model.CategoryOptions(categories)}
		}
	}
}
