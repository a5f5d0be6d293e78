package ui

import (
	"context"

	"pg360/internal/api"
	"pg360/internal/form"
	"pg360/internal/model"
)

const (
	placeName = iota
	placeDescription
	placeAddress
	placeLatitude
	placeLongitude
	placeCategory
	placeImage
)

// NewPlaceFormModel creates the place create form.
func NewPlaceFormModel(client *api.Client) *FormModel {
	fields := newFieldSet(
		textField("Nome do Local", "Ex: Praça das Cabeças", true),
		textField("Descrição", "Digite a descrição", false),
		textField("Endereço", "Rua, número, bairro", true),
		textField("Latitude", "-24.000", false),
		textField("Longitude", "-46.000", false),
		choiceField("Categoria", "Selecione..."),
		textField("Imagem (URL)", "https://...", false),
	)
	refs := map[refKind]int{refCategories: placeCategory}
	ctrl := form.NewController("place", "Local cadastrado com sucesso!")
	return newFormModel(client, model.ScreenPlaces, "Cadastrar Local", ctrl, fields, refs, preparePlace)
}

func placeDraft(fs fieldSet) model.PlaceDraft {
	return model.PlaceDraft{
		Name:        fs.value(placeName),
		Description: fs.value(placeDescription),
		Address:     fs.value(placeAddress),
		Latitude:    fs.value(placeLatitude),
		Longitude:   fs.value(placeLongitude),
		CategoryID:  fs.value(placeCategory),
		Images:      []string{fs.value(placeImage)},
	}
}

func preparePlace(fs fieldSet) (func() error, sendFunc) {
	d := placeDraft(fs)
	return func() error { return form.ValidatePlace(d) },
		func(ctx context.Context, client *api.Client) error {
			return client.CreatePlace(ctx, form.MapPlace(d))
		}
}
