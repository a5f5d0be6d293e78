package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// EventsLoadedMsg is sent when the events list is loaded.
type EventsLoadedMsg struct {
	Events []Event
}

// CategoriesLoadedMsg is sent when the categories list is loaded.
type CategoriesLoadedMsg struct {
	Categories []Category
}

// PlacesLoadedMsg is sent when the places list is loaded.
type PlacesLoadedMsg struct {
	Places []Place
}

// CarouselLoadedMsg is sent when the home carousel events are loaded.
type CarouselLoadedMsg struct {
	Events []Event
	Err    error
}

// FormCancelledMsg is sent when a form is left without saving.
type FormCancelledMsg struct{}

// EntitySavedMsg is sent after a create form succeeded so lists can reload.
type EntitySavedMsg struct {
	Screen Screen // list screen that owns the entity
}

// LoggedInMsg is sent when the login screen accepted the credentials.
type LoggedInMsg struct {
	User string
}

// LoggedOutMsg is sent after the login flag was removed.
type LoggedOutMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenEvents
	ScreenCategories
	ScreenPlaces
	ScreenEventDetail
	ScreenEventForm
	ScreenCategoryForm
	ScreenPlaceForm
)

// IsForm reports whether the screen is one of the create forms.
func (s Screen) IsForm() bool {
	return s == ScreenEventForm || s == ScreenCategoryForm || s == ScreenPlaceForm
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
