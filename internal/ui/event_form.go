package ui

import (
	"context"

	"pg360/internal/api"
	"pg360/internal/form"
	"pg360/internal/model"
)

const (
	eventName = iota
	eventDescription
	eventStart
	eventEnd
	eventPlace
	eventCategory
	eventImage
)

// NewEventFormModel creates the event create form. Places and categories are
// loaded when the form starts.
func NewEventFormModel(client *api.Client) *FormModel {
	fields := newFieldSet(
		textField("Nome do Evento", "Digite o nome", true),
		textField("Descrição", "Digite a descrição", false),
		textField("Data Início", "DD/MM/AAAA", true),
		textField("Data Fim", "DD/MM/AAAA", true),
		choiceField("Local", "Selecione um Local"),
		choiceField("Categoria", "Selecione uma Categoria"),
		textField("Imagem do Evento (URL)", "https://...", false),
	)
	refs := map[refKind]int{refPlaces: eventPlace, refCategories: eventCategory}
	ctrl := form.NewController("event", "Evento cadastrado com sucesso!")
	return newFormModel(client, model.ScreenEvents, "Cadastrar Evento", ctrl, fields, refs, prepareEvent)
}

func eventDraft(fs fieldSet) model.EventDraft {
	return model.EventDraft{
		Name:        fs.value(eventName),
		Description: fs.value(eventDescription),
		StartDate:   fs.value(eventStart),
		EndDate:     fs.value(eventEnd),
		PlaceID:     fs.value(eventPlace),
		CategoryID:  fs.value(eventCategory),
		Images:      []string{fs.value(eventImage)},
	}
}

func prepareEvent(fs fieldSet) (func() error, sendFunc) {
	d := eventDraft(fs)
	return func() error { return form.ValidateEvent(d) },
		func(ctx context.Context, client *api.Client) error {
			return client.CreateEvent(ctx, form.MapEvent(d))
		}
}
