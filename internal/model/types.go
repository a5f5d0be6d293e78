package model

// Category represents a category as listed by the API.
type Category struct {
	ID          int64  `json:"cdCategoria"`
	Name        string `json:"nmCategoria"`
	Description string `json:"dsCategoria"`
}

// Place represents a place (venue) as listed by the API.
type Place struct {
	ID          int64    `json:"cdLocal"`
	Name        string   `json:"nmLocal"`
	Description string   `json:"dsLocal"`
	Address     string   `json:"endereco"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Images      []string `json:"imagens"`
}

// Event represents an event record as listed by the API.
type Event struct {
	ID          int64     `json:"cdEvento"`
	Name        string    `json:"nmEvento"`
	Description string    `json:"dsEvento"`
	StartDate   string    `json:"dtInicioEvento"` // ISO 8601 date (YYYY-MM-DD)
	EndDate     string    `json:"dtFimEvento"`
	Images      []string  `json:"imagens"`
	Place       *Place    `json:"local"`
	Category    *Category `json:"categoria"`
}

// FirstImage returns the first image URL, or "" when the event has none.
func (e Event) FirstImage() string {
	if len(e.Images) == 0 {
		return ""
	}
	return e.Images[0]
}

// ReferenceOption is an id/display-name pair used to fill a select input.
type ReferenceOption struct {
	ID   int64
	Name string
}

// CategoryOptions converts listed categories to select options.
func CategoryOptions(categories []Category) []ReferenceOption {
	opts := make([]ReferenceOption, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, ReferenceOption{ID: c.ID, Name: c.Name})
	}
	return opts
}

// PlaceOptions converts listed places to select options.
func PlaceOptions(places []Place) []ReferenceOption {
	opts := make([]ReferenceOption, 0, len(places))
	for _, p := range places {
		opts = append(opts, ReferenceOption{ID: p.ID, Name: p.Name})
	}
	return opts
}

// CategoryDraft holds the values typed into the category form.
type CategoryDraft struct {
	Name        string
	Description string
}

// EventDraft holds the values typed into the event form.
type EventDraft struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	PlaceID     string
	CategoryID  string
	Images      []string // only the first entry is editable
}

// PlaceDraft holds the values typed into the place form.
type PlaceDraft struct {
	Name        string
	Description string
	Address     string
	Latitude    string
	Longitude   string
	CategoryID  string
	Images      []string
}

// CategoryRef is the nested category reference sent to the API.
type CategoryRef struct {
	ID int64 `json:"cdCategoria"`
}

// PlaceRef is the nested place reference sent to the API.
type PlaceRef struct {
	ID int64 `json:"cdLocal"`
}

// NewCategory is the payload for POST /categorias.
type NewCategory struct {
	Name        string `json:"nmCategoria"`
	Description string `json:"dsCategoria"`
}

// NewPlace is the payload for POST /locais.
type NewPlace struct {
	Name        string      `json:"nmLocal"`
	Description string      `json:"dsLocal"`
	Address     string      `json:"endereco"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	Category    CategoryRef `json:"categoria"`
	Images      []string    `json:"imagens"`
}

// NewEvent is the payload for POST /eventos.
type NewEvent struct {
	Name        string      `json:"nmEvento"`
	Description string      `json:"dsEvento"`
	StartDate   string      `json:"dtInicioEvento"`
	EndDate     string      `json:"dtFimEvento"`
	Place       PlaceRef    `json:"local"`
	Category    CategoryRef `json:"categoria"`
	Images      []string    `json:"imagens"`
}
