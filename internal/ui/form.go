package ui

import (
	"context"

	"pg360/internal/api"
	"pg360/internal/form"
	"pg360/internal/model"
	"pg360/internal/toast"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// formResultMsg is the settled network call of one submission.
type formResultMsg struct {
	formID string
	result form.Result
}

// sendFunc performs the create request for an already captured draft.
type sendFunc func(ctx context.Context, client *api.Client) error

// preparer reads the draft from the inputs and returns its validation and
// request steps.
type preparer func(fs fieldSet) (validate func() error, send sendFunc)

// FormModel is a create form: category, event or place.
type FormModel struct {
	id      string
	screen  model.Screen // list tab owning the entity
	title   string
	client  *api.Client
	ctrl    *form.Controller
	fields  fieldSet
	refs    map[refKind]int // field index filled by each reference list
	prepare preparer
	keys    FormKeyMap
}

func newFormModel(client *api.Client, screen model.Screen, title string, ctrl *form.Controller, fields fieldSet, refs map[refKind]int, prepare preparer) *FormModel {
	return &FormModel{
		id:      uuid.NewString(),
		screen:  screen,
		title:   title,
		client:  client,
		ctrl:    ctrl,
		fields:  fields,
		refs:    refs,
		prepare: prepare,
		keys:    DefaultFormKeyMap(),
	}
}

// ID identifies this form instance; results addressed to another id are stale.
func (m *FormModel) ID() string {
	return m.id
}

// Busy reports whether a submission is in flight.
func (m *FormModel) Busy() bool {
	return m.ctrl.Busy()
}

// Init starts the reference list loads.
func (m *FormModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, kind := range []refKind{refCategories, refPlaces} {
		if _, ok := m.refs[kind]; ok {
			cmds = append(cmds, loadRefsCmd(m.client, m.id, kind))
		}
	}
	return tea.Batch(cmds...)
}

// Update handles keys and the form's own async results.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refsLoadedMsg:
		idx, ok := m.refs[msg.kind]
		if !ok {
			return m, nil
		}
		choice := &m.fields.fields[idx].choice
		if msg.err != nil {
			choice.loading = false
			choice.failed = true
			return m, toast.Show(toast.Error, msg.kind.failureText())
		}
		choice.setOptions(msg.options)
		return m, nil

	case formResultMsg:
		out := m.ctrl.Settle(msg.result)
		cmds := []tea.Cmd{toast.Show(out.Toast.Kind, out.Toast.Text)}
		if out.Reset {
			m.fields.reset()
			screen := m.screen
			cmds = append(cmds, func() tea.Msg { return model.EntitySavedMsg{Screen: screen} })
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return model.FormCancelledMsg{} }
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		case key.Matches(msg, m.keys.NextField):
			m.fields.next()
			return m, nil
		case key.Matches(msg, m.keys.PrevField):
			m.fields.prev()
			return m, nil
		}
		return m, m.fields.update(msg, m.keys)
	}
	return m, nil
}

func (m *FormModel) save() tea.Cmd {
	validate, send := m.prepare(m.fields)
	client := m.client
	step, out := m.ctrl.Submit(validate, func() error {
		return send(context.Background(), client)
	})
	if out != nil {
		return toast.Show(out.Toast.Kind, out.Toast.Text)
	}
	if step == nil {
		return nil
	}
	id := m.id
	return func() tea.Msg {
		return formResultMsg{formID: id, result: step()}
	}
}

// View renders the form.
func (m *FormModel) View(width, height int) string {
	parts := []string{FormTitleStyle.Render(m.title)}
	parts = append(parts, m.fields.View()...)

	status := HelpDescStyle.Render("ctrl+s cadastrar  ·  esc voltar")
	if m.ctrl.Busy() {
		status = BusyStyle.Render("Enviando...")
	}
	parts = append(parts, "", status)

	return PanelStyle.
		Width(max(20, width-4)).
		Height(max(5, height-2)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
