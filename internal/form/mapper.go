package form

import (
	"strconv"
	"strings"

	"pg360/internal/model"
	"pg360/internal/util"
)

// The mappers assume a draft that passed validation but never fail: values
// that cannot be converted fall back to zero ids, raw dates or null
// coordinates.

// MapCategory converts a category draft to its API payload.
func MapCategory(d model.CategoryDraft) model.NewCategory {
	return model.NewCategory{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
	}
}

// MapEvent converts an event draft to its API payload.
func MapEvent(d model.EventDraft) model.NewEvent {
	return model.NewEvent{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		StartDate:   isoOrRaw(d.StartDate),
		EndDate:     isoOrRaw(d.EndDate),
		Place:       model.PlaceRef{ID: parseID(d.PlaceID)},
		Category:    model.CategoryRef{ID: parseID(d.CategoryID)},
		Images:      imageList(d.Images),
	}
}

// MapPlace converts a place draft to its API payload.
func MapPlace(d model.PlaceDraft) model.NewPlace {
	return model.NewPlace{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Address:     strings.TrimSpace(d.Address),
		Latitude:    parseCoordinate(d.Latitude),
		Longitude:   parseCoordinate(d.Longitude),
		Category:    model.CategoryRef{ID: parseID(d.CategoryID)},
		Images:      imageList(d.Images),
	}
}

func parseID(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseCoordinate returns nil (JSON null) for blank or unparseable input.
func parseCoordinate(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := util.ParseDecimal(s)
	if err != nil {
		return nil
	}
	return &v
}

func isoOrRaw(s string) string {
	iso, err := util.ParseDateInput(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return iso
}

// imageList keeps only the first image and drops it when blank.
func imageList(images []string) []string {
	if img := firstImage(images); img != "" {
		return []string{img}
	}
	return []string{}
}
