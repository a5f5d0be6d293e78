package form

import (
	"strings"
	"testing"

	"pg360/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() model.EventDraft {
	return model.EventDraft{
		Name:       "Festival de Inverno",
		StartDate:  "2025-07-10",
		EndDate:    "2025-07-12",
		PlaceID:    "3",
		CategoryID: "1",
		Images:     []string{"https://example.com/a.jpg"},
	}
}

func validPlace() model.PlaceDraft {
	return model.PlaceDraft{
		Name:       "Praça das Cabeças",
		Address:    "Av. Central, 100",
		CategoryID: "2",
		Latitude:   "-24,5",
		Longitude:  "-46.6",
	}
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Message
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory(model.CategoryDraft{Name: "Música"}))

	for _, name := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, MsgCategoryNameRequired, messageOf(t, ValidateCategory(model.CategoryDraft{Name: name})))
	}
}

func TestValidateCategory_DescriptionBoundary(t *testing.T) {
	ok := model.CategoryDraft{Name: "Música", Description: strings.Repeat("a", 255)}
	assert.NoError(t, ValidateCategory(ok))

	tooLong := model.CategoryDraft{Name: "Música", Description: strings.Repeat("a", 256)}
	assert.Equal(t, MsgCategoryDescTooLong, messageOf(t, ValidateCategory(tooLong)))

	// Characters, not bytes.
	accented := model.CategoryDraft{Name: "Música", Description: strings.Repeat("ç", 255)}
	assert.NoError(t, ValidateCategory(accented))
}

func TestValidateCategory_NameCheckedFirst(t *testing.T) {
	d := model.CategoryDraft{Name: " ", Description: strings.Repeat("a", 300)}
	assert.Equal(t, MsgCategoryNameRequired, messageOf(t, ValidateCategory(d)))
}

func TestValidateEvent(t *testing.T) {
	assert.NoError(t, ValidateEvent(validEvent()))

	tests := []struct {
		name   string
		mutate func(*model.EventDraft)
		want   string
	}{
		{"blank name", func(d *model.EventDraft) { d.Name = "  " }, MsgEventNameRequired},
		{"missing start", func(d *model.EventDraft) { d.StartDate = "" }, MsgEventStartRequired},
		{"bad start", func(d *model.EventDraft) { d.StartDate = "amanhã" }, MsgEventStartInvalid},
		{"missing end", func(d *model.EventDraft) { d.EndDate = "" }, MsgEventEndRequired},
		{"bad end", func(d *model.EventDraft) { d.EndDate = "32/01/2025" }, MsgEventEndInvalid},
		{"end before start", func(d *model.EventDraft) { d.EndDate = "2025-07-09" }, MsgEventEndBefore},
		{"end before start mixed layouts", func(d *model.EventDraft) { d.EndDate = "09/07/2025" }, MsgEventEndBefore},
		{"no place", func(d *model.EventDraft) { d.PlaceID = "" }, MsgEventPlaceRequired},
		{"no category", func(d *model.EventDraft) { d.CategoryID = "" }, MsgEventCatRequired},
		{"image without scheme", func(d *model.EventDraft) { d.Images = []string{"www.example.com/a.jpg"} }, MsgEventImageInvalid},
		{"image ftp", func(d *model.EventDraft) { d.Images = []string{"ftp://example.com/a.jpg"} }, MsgEventImageInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validEvent()
			tt.mutate(&d)
			assert.Equal(t, tt.want, messageOf(t, ValidateEvent(d)))
		})
	}
}

func TestValidateEvent_SameDayAndOptionalImage(t *testing.T) {
	d := validEvent()
	d.EndDate = d.StartDate
	d.Images = nil
	assert.NoError(t, ValidateEvent(d))

	d.Images = []string{"   "}
	assert.NoError(t, ValidateEvent(d))

	d.Images = []string{"HTTP://EXAMPLE.COM/x.png"}
	assert.NoError(t, ValidateEvent(d))
}

func TestValidateEvent_FirstErrorOnly(t *testing.T) {
	d := model.EventDraft{Name: "Show", StartDate: "2025-01-01", EndDate: "2025-01-02"}
	assert.Equal(t, MsgEventPlaceRequired, messageOf(t, ValidateEvent(d)))
}

func TestValidatePlace(t *testing.T) {
	assert.NoError(t, ValidatePlace(validPlace()))

	tests := []struct {
		name   string
		mutate func(*model.PlaceDraft)
		want   string
	}{
		{"blank name", func(d *model.PlaceDraft) { d.Name = "" }, MsgPlaceNameRequired},
		{"blank address", func(d *model.PlaceDraft) { d.Address = " " }, MsgPlaceAddressRequired},
		{"no category", func(d *model.PlaceDraft) { d.CategoryID = "" }, MsgPlaceCatRequired},
		{"non numeric category", func(d *model.PlaceDraft) { d.CategoryID = "abc" }, MsgPlaceCatRequired},
		{"latitude text", func(d *model.PlaceDraft) { d.Latitude = "norte" }, MsgPlaceLatInvalid},
		{"latitude range", func(d *model.PlaceDraft) { d.Latitude = "91" }, MsgPlaceLatInvalid},
		{"longitude range", func(d *model.PlaceDraft) { d.Longitude = "-180,5" }, MsgPlaceLngInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validPlace()
			tt.mutate(&d)
			assert.Equal(t, tt.want, messageOf(t, ValidatePlace(d)))
		})
	}
}

func TestValidatePlace_BlankCoordinates(t *testing.T) {
	d := validPlace()
	d.Latitude = ""
	d.Longitude = "  "
	assert.NoError(t, ValidatePlace(d))
}
