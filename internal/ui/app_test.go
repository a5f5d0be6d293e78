package ui

import (
	"testing"

	"pg360/internal/api"
	"pg360/internal/auth"
	"pg360/internal/form"
	"pg360/internal/model"
	"pg360/internal/storage"
	"pg360/internal/toast"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// feed runs cmd and delivers every resulting message. Never pass it a timer.
func feed(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range drain(cmd) {
		m, _ = step(t, m, msg)
	}
	return m
}

func newApp(t *testing.T, loggedIn bool) (Model, storage.KV) {
	t.Helper()
	srv := newTestAPI(t)
	kv := storage.NewMemory()
	if loggedIn {
		require.NoError(t, auth.MarkLoggedIn(kv))
	}
	m := New(api.NewClient(srv.URL), kv, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, kv
}

func TestApp_GuardRedirectsToLogin(t *testing.T) {
	m, kv := newApp(t, false)
	assert.Equal(t, model.ScreenLogin, m.screen)
	assert.Nil(t, m.Init(), "nothing loads behind the login screen")

	for _, target := range []model.Screen{model.ScreenHome, model.ScreenEvents, model.ScreenPlaceForm} {
		m, _ = m.navigate(target)
		assert.Equal(t, model.ScreenLogin, m.screen)
		assert.Nil(t, m.form)
	}

	m, _ = step(t, m, runes("admin"))
	m, _ = step(t, m, keyEnter)
	m, _ = step(t, m, runes("segredo"))
	m, cmd := step(t, m, keyEnter)
	require.NotNil(t, cmd)

	m, cmd = step(t, m, cmd())
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())

	assert.Equal(t, model.ScreenHome, m.screen)
	assert.Equal(t, "admin", m.user)
	assert.True(t, auth.LoggedIn(kv))
	assert.NotNil(t, cmd, "home starts the carousel")
	assert.True(t, m.carousel.loading)
}

func TestApp_LoginRejectsBadPassword(t *testing.T) {
	srv := newTestAPI(t)
	hash, err := auth.HashPassword("certa")
	require.NoError(t, err)
	kv := storage.NewMemory()
	m := New(api.NewClient(srv.URL), kv, &auth.Credentials{User: "admin", Hash: hash})

	m.login.inputs[0].SetValue("admin")
	m.login.inputs[1].SetValue("errada")
	m.login.focused = 1
	m, cmd := step(t, m, keyEnter)
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())

	assert.Nil(t, cmd)
	assert.Equal(t, model.ScreenLogin, m.screen)
	assert.Equal(t, "Usuário ou senha inválidos.", m.login.error)
	assert.False(t, auth.LoggedIn(kv))
}

func TestApp_LogoutAndExternalFlagRemoval(t *testing.T) {
	m, kv := newApp(t, true)
	assert.Equal(t, model.ScreenHome, m.screen)

	m, cmd := step(t, m, runes("L"))
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, model.ScreenLogin, m.screen)
	assert.False(t, auth.LoggedIn(kv))

	m2, kv2 := newApp(t, true)
	require.NoError(t, kv2.Remove(auth.FlagKey))
	m2, _ = step(t, m2, runes("2"))
	assert.Equal(t, model.ScreenLogin, m2.screen)
}

func TestApp_ToastDismiss(t *testing.T) {
	m, _ := newApp(t, true)

	m, cmd := step(t, m, toast.ShowMsg{Toast: toast.Toast{Kind: toast.Success, Text: "Local cadastrado com sucesso!"}})
	assert.NotNil(t, cmd, "expiry timer")
	current, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "Local cadastrado com sucesso!", current.Text)
	assert.Contains(t, m.View(), "Local cadastrado com sucesso!")

	m, _ = step(t, m, keyCtrlX)
	_, ok = m.toasts.Current()
	assert.False(t, ok)
}

func openCategoryForm(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := step(t, m, runes("3"))
	m = feed(t, m, cmd)
	require.NotNil(t, m.categories)

	m, _ = step(t, m, runes("a"))
	require.Equal(t, model.ScreenCategoryForm, m.screen)
	require.Equal(t, model.ModeInsert, m.mode)
	require.NotNil(t, m.form)
	return m
}

func TestApp_FormSubmitReloadsList(t *testing.T) {
	m, _ := newApp(t, true)
	m = openCategoryForm(t, m)

	m.form.fields.setValue(categoryName, "Música")
	m, cmd := step(t, m, keyCtrlS)
	require.NotNil(t, cmd)

	var reload tea.Cmd
	for _, msg := range drain(cmd) {
		m, cmd = step(t, m, msg)
		for _, follow := range drain(cmd) {
			var next tea.Cmd
			m, next = step(t, m, follow)
			if _, saved := follow.(model.EntitySavedMsg); saved {
				reload = next
			}
		}
	}

	current, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "Categoria cadastrada com sucesso!", current.Text)
	require.NotNil(t, reload)
	assert.IsType(t, model.CategoriesLoadedMsg{}, reload())
	assert.Equal(t, model.ScreenCategoryForm, m.screen, "the form stays open for the next entry")
}

func TestApp_StaleFormResultsDropped(t *testing.T) {
	m, _ := newApp(t, true)
	m = openCategoryForm(t, m)
	formID := m.form.ID()

	m, cmd := step(t, m, formResultMsg{formID: "someone-else", result: form.Result{}})
	assert.Nil(t, cmd)
	assert.Equal(t, formID, m.form.ID())

	m, cmd = step(t, m, keyEsc)
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, model.ScreenCategories, m.screen)
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Nil(t, m.form)

	m, cmd = step(t, m, formResultMsg{formID: formID, result: form.Result{}})
	assert.Nil(t, cmd)
	m, cmd = step(t, m, refsLoadedMsg{formID: formID, kind: refCategories})
	assert.Nil(t, cmd)
	_, ok := m.toasts.Current()
	assert.False(t, ok)
}

func TestApp_EventDetail(t *testing.T) {
	m, _ := newApp(t, true)
	m, cmd := step(t, m, runes("2"))
	m = feed(t, m, cmd)
	require.NotNil(t, m.events)

	m, _ = step(t, m, runes("j"))
	m, _ = step(t, m, keyEnter)
	require.Equal(t, model.ScreenEventDetail, m.screen)
	assert.Equal(t, "Feira do Livro", m.eventDetail.event.Name)

	m, _ = step(t, m, keyEsc)
	assert.Equal(t, model.ScreenEvents, m.screen)
}

func TestApp_TablePrefsPersist(t *testing.T) {
	m, kv := newApp(t, true)
	m, cmd := step(t, m, runes("2"))
	m = feed(t, m, cmd)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = step(t, m, runes("S"))

	first, ok := m.events.Selected()
	require.True(t, ok)
	assert.Equal(t, "Natal Iluminado", first.Name)

	_, stored, err := kv.Get(prefsKey)
	require.NoError(t, err)
	assert.True(t, stored)

	reopened := New(m.client, kv, nil)
	assert.Equal(t, "name", reopened.prefs.Events.SortKey)
	assert.True(t, reopened.prefs.Events.SortDesc)
}

func TestApp_ListLoadFailure(t *testing.T) {
	srv := newTestAPI(t)
	srv.Close()
	kv := storage.NewMemory()
	require.NoError(t, auth.MarkLoggedIn(kv))
	m := New(api.NewClient(srv.URL), kv, nil)

	m, cmd := step(t, m, runes("4"))
	m = feed(t, m, cmd)
	assert.Nil(t, m.places)
	assert.Contains(t, m.error, form.MsgNoConnection)
}
