package form

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"pg360/internal/model"
	"pg360/internal/util"
)

// MaxCategoryDescription is the longest accepted category description, in characters.
const MaxCategoryDescription = 255

// Validation messages, in the order the rules run.
const (
	MsgCategoryNameRequired = "O nome da categoria é obrigatório."
	MsgCategoryDescTooLong  = "A descrição não pode ter mais de 255 caracteres."

	MsgEventNameRequired  = "O nome do evento é obrigatório."
	MsgEventStartRequired = "A data de início é obrigatória."
	MsgEventStartInvalid  = "A data de início é inválida."
	MsgEventEndRequired   = "A data de fim é obrigatória."
	MsgEventEndInvalid    = "A data de fim é inválida."
	MsgEventEndBefore     = "A data de fim não pode ser anterior à data de início."
	MsgEventPlaceRequired = "Por favor, selecione um Local para o evento."
	MsgEventCatRequired   = "Por favor, selecione uma Categoria."
	MsgEventImageInvalid  = "A URL da imagem parece inválida."

	MsgPlaceNameRequired    = "O nome do local é obrigatório."
	MsgPlaceAddressRequired = "O endereço é obrigatório."
	MsgPlaceCatRequired     = "Selecione uma categoria."
	MsgPlaceLatInvalid      = "Latitude inválida."
	MsgPlaceLngInvalid      = "Longitude inválida."
)

// ValidateCategory returns the first violated category rule, or nil.
func ValidateCategory(d model.CategoryDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", MsgCategoryNameRequired)
	}
	if utf8.RuneCountInString(d.Description) > MaxCategoryDescription {
		return invalid("description", MsgCategoryDescTooLong)
	}
	return nil
}

// ValidateEvent returns the first violated event rule, or nil.
func ValidateEvent(d model.EventDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", MsgEventNameRequired)
	}

	if strings.TrimSpace(d.StartDate) == "" {
		return invalid("startDate", MsgEventStartRequired)
	}
	start, err := util.ParseDateInput(d.StartDate)
	if err != nil {
		return invalid("startDate", MsgEventStartInvalid)
	}

	if strings.TrimSpace(d.EndDate) == "" {
		return invalid("endDate", MsgEventEndRequired)
	}
	end, err := util.ParseDateInput(d.EndDate)
	if err != nil {
		return invalid("endDate", MsgEventEndInvalid)
	}

	// ISO dates order lexically.
	if end < start {
		return invalid("endDate", MsgEventEndBefore)
	}

	if !selected(d.PlaceID) {
		return invalid("place", MsgEventPlaceRequired)
	}
	if !selected(d.CategoryID) {
		return invalid("category", MsgEventCatRequired)
	}

	if img := firstImage(d.Images); img != "" && !hasURLScheme(img) {
		return invalid("image", MsgEventImageInvalid)
	}
	return nil
}

// ValidatePlace returns the first violated place rule, or nil.
func ValidatePlace(d model.PlaceDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", MsgPlaceNameRequired)
	}
	if strings.TrimSpace(d.Address) == "" {
		return invalid("address", MsgPlaceAddressRequired)
	}
	if !selected(d.CategoryID) {
		return invalid("category", MsgPlaceCatRequired)
	}
	if !coordinateOK(d.Latitude, 90) {
		return invalid("latitude", MsgPlaceLatInvalid)
	}
	if !coordinateOK(d.Longitude, 180) {
		return invalid("longitude", MsgPlaceLngInvalid)
	}
	return nil
}

// selected reports whether a reference id holds a usable positive integer.
func selected(id string) bool {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	return err == nil && n > 0
}

func coordinateOK(s string, limit float64) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	v, err := util.ParseDecimal(s)
	if err != nil {
		return false
	}
	return v >= -limit && v <= limit
}

func hasURLScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return strings.TrimSpace(images[0])
}
