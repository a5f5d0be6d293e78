package ui

import (
	"strconv"

	"pg360/internal/model"
	"pg360/internal/util"
)

// EventsModel is the events list tab.
type EventsModel = tableModel[model.Event]

// CategoriesModel is the categories list tab.
type CategoriesModel = tableModel[model.Category]

// PlacesModel is the places list tab.
type PlacesModel = tableModel[model.Place]

// NewEventsModel creates the events table.
func NewEventsModel(events []model.Event) *EventsModel {
	m := newTableModel(events, "eventos",
		"    Nenhum evento cadastrado.\n    Pressione  a  para cadastrar o primeiro!",
		[]tableColumn{
			{key: "id", label: "cód", width: 5},
			{key: "name", label: "nome", width: 28},
			{key: "start", label: "início", width: 10},
			{key: "end", label: "fim", width: 10},
			{key: "place", label: "local", width: 20},
			{key: "category", label: "categoria", width: 16},
		},
		func(e model.Event) int64 { return e.ID },
		eventValue,
	)
	m.cell = func(e model.Event, key string) string {
		switch key {
		case "start":
			return util.FormatDate(e.StartDate)
		case "end":
			return util.FormatDate(e.EndDate)
		}
		return eventValue(e, key)
	}
	return m
}

func eventValue(e model.Event, key string) string {
	switch key {
	case "id":
		return strconv.FormatInt(e.ID, 10)
	case "name":
		return e.Name
	case "start":
		return e.StartDate
	case "end":
		return e.EndDate
	case "place":
		if e.Place != nil {
			return e.Place.Name
		}
	case "category":
		if e.Category != nil {
			return e.Category.Name
		}
	}
	return ""
}

// NewCategoriesModel creates the categories table.
func NewCategoriesModel(categories []model.Category) *CategoriesModel {
	return newTableModel(categories, "categorias",
		"    Nenhuma categoria cadastrada.\n    Pressione  a  para cadastrar a primeira!",
		[]tableColumn{
			{key: "id", label: "cód", width: 5},
			{key: "name", label: "nome", width: 24},
			{key: "description", label: "descrição", width: 48},
		},
		func(c model.Category) int64 { return c.ID },
		func(c model.Category, key string) string {
			switch key {
			case "id":
				return strconv.FormatInt(c.ID, 10)
			case "name":
				return c.Name
			case "description":
				return c.Description
			}
			return ""
		},
	)
}

// NewPlacesModel creates the places table.
func NewPlacesModel(places []model.Place) *PlacesModel {
	return newTableModel(places, "locais",
		"    Nenhum local cadastrado.\n    Pressione  a  para cadastrar o primeiro!",
		[]tableColumn{
			{key: "id", label: "cód", width: 5},
			{key: "name", label: "nome", width: 24},
			{key: "address", label: "endereço", width: 28},
			{key: "lat", label: "lat", width: 10},
			{key: "lng", label: "lng", width: 10},
		},
		func(p model.Place) int64 { return p.ID },
		func(p model.Place, key string) string {
			switch key {
			case "id":
				return strconv.FormatInt(p.ID, 10)
			case "name":
				return p.Name
			case "address":
				return p.Address
			case "lat":
				if p.Latitude != nil {
					return util.FormatCoordinate(p.Latitude)
				}
			case "lng":
				if p.Longitude != nil {
					return util.FormatCoordinate(p.Longitude)
				}
			}
			return ""
		},
	)
}
