package ui

import (
	"testing"

	"pg360/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []model.Event {
	music := &model.Category{ID: 1, Name: "Música"}
	sport := &model.Category{ID: 2, Name: "Esporte"}
	return []model.Event{
		{ID: 9, Name: "Rock na Praça", StartDate: "2025-03-01", Category: music},
		{ID: 10, Name: "Corrida Noturna", StartDate: "2025-01-15", Category: sport},
		{ID: 11, Name: "Jazz no Parque", StartDate: "2025-02-20", Category: music},
	}
}

func names(rows []model.Event) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestTable_NumericSort(t *testing.T) {
	m := NewEventsModel(sampleEvents())
	m.SortActiveColumn(true)
	assert.Equal(t, []string{"Jazz no Parque", "Corrida Noturna", "Rock na Praça"}, names(m.rows))
}

func TestTable_DateColumnSortsChronologically(t *testing.T) {
	m := NewEventsModel(sampleEvents())
	require.True(t, m.JumpToColumn(3))
	m.SortActiveColumn(false)
	assert.Equal(t, []string{"Corrida Noturna", "Jazz no Parque", "Rock na Praça"}, names(m.rows))
}

func TestTable_FilterBySelectedValue(t *testing.T) {
	m := NewEventsModel(sampleEvents())
	require.True(t, m.JumpToColumn(6))

	require.True(t, m.FilterBySelectedValue())
	assert.Equal(t, []string{"Rock na Praça", "Jazz no Parque"}, names(m.rows))

	assert.True(t, m.ClearFilter())
	assert.Len(t, m.rows, 3)
	assert.False(t, m.ClearFilter())
}

func TestTable_HideColumnsAndPrefs(t *testing.T) {
	m := NewCategoriesModel([]model.Category{{ID: 1, Name: "Música"}})
	for m.HideActiveColumn() {
	}
	prefs := m.Prefs()
	assert.Len(t, prefs.HiddenColumns, len(m.columns)-1, "the last visible column stays")

	fresh := NewCategoriesModel([]model.Category{{ID: 1, Name: "Música"}})
	fresh.ApplyPrefs(prefs)
	assert.Equal(t, prefs, fresh.Prefs())
	assert.False(t, fresh.JumpToColumn(1), "hidden columns cannot be jumped to")
}

func TestTable_EmptyState(t *testing.T) {
	m := NewPlacesModel(nil)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(100, 20), "Nenhum local cadastrado")
}
