package ui

import (
	"context"

	"pg360/internal/api"
	"pg360/internal/form"
	"pg360/internal/model"
)

const (
	categoryName = iota
	categoryDescription
)

// NewCategoryFormModel creates the category create form.
func NewCategoryFormModel(client *api.Client) *FormModel {
	fields := newFieldSet(
		textField("Nome da Categoria", "Digite o nome da categoria", true),
		textField("Descrição", "Digite a descrição", false),
	)
	ctrl := form.NewController("category", "Categoria cadastrada com sucesso!")
	return newFormModel(client, model.ScreenCategories, "Cadastrar Categoria", ctrl, fields, nil, prepareCategory)
}

func categoryDraft(fs fieldSet) model.CategoryDraft {
	return model.CategoryDraft{
		Name:        fs.value(categoryName),
		Description: fs.value(categoryDescription),
	}
}

func prepareCategory(fs fieldSet) (func() error, sendFunc) {
	d := categoryDraft(fs)
	return func() error { return form.ValidateCategory(d) },
		func(ctx context.Context, client *api.Client) error {
			return client.CreateCategory(ctx, form.MapCategory(d))
		}
}
