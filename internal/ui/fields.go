package ui

import (
	"strconv"

	"pg360/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// selectInput picks one reference option. Index -1 means nothing selected.
type selectInput struct {
	placeholder string
	options     []model.ReferenceOption
	index       int
	loading     bool
	failed      bool
}

func newSelectInput(placeholder string) selectInput {
	return selectInput{placeholder: placeholder, index: -1, loading: true}
}

func (s *selectInput) setOptions(opts []model.ReferenceOption) {
	s.options = opts
	s.loading = false
	s.failed = false
	s.index = -1
}

func (s *selectInput) next() {
	if len(s.options) == 0 {
		return
	}
	s.index++
	if s.index >= len(s.options) {
		s.index = -1
	}
}

func (s *selectInput) prev() {
	if len(s.options) == 0 {
		return
	}
	s.index--
	if s.index < -1 {
		s.index = len(s.options) - 1
	}
}

// value returns the selected id as typed into the draft, or "".
func (s selectInput) value() string {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return strconv.FormatInt(s.options[s.index].ID, 10)
}

func (s selectInput) View() string {
	switch {
	case s.loading:
		return HelpDescStyle.Render("carregando...")
	case s.failed:
		return ErrorStyle.Render("lista indisponível")
	case len(s.options) == 0:
		return HelpDescStyle.Render("nenhuma opção cadastrada")
	}
	label := s.placeholder
	if s.index >= 0 {
		label = s.options[s.index].Name
	}
	pos := ""
	if s.index >= 0 {
		pos = HelpDescStyle.Render(" (" + strconv.Itoa(s.index+1) + "/" + strconv.Itoa(len(s.options)) + ")")
	}
	return "‹ " + NormalRowStyle.Render(label) + " ›" + pos
}

type field struct {
	label    string
	required bool
	input    textinput.Model
	choice   selectInput
	isChoice bool
}

func textField(label, placeholder string, required bool) field {
	in := textinput.New()
	in.Placeholder = placeholder
	return field{label: label, required: required, input: in}
}

func choiceField(label, placeholder string) field {
	return field{label: label, required: true, choice: newSelectInput(placeholder), isChoice: true}
}

// fieldSet is the ordered, focusable list of inputs of a create form.
type fieldSet struct {
	fields  []field
	focused int
}

func newFieldSet(fields ...field) fieldSet {
	fs := fieldSet{fields: fields}
	fs.focus(0)
	return fs
}

func (fs *fieldSet) focus(i int) {
	if !fs.fields[fs.focused].isChoice {
		fs.fields[fs.focused].input.Blur()
	}
	fs.focused = i
	if !fs.fields[i].isChoice {
		fs.fields[i].input.Focus()
	}
}

func (fs *fieldSet) next() {
	fs.focus((fs.focused + 1) % len(fs.fields))
}

func (fs *fieldSet) prev() {
	i := fs.focused - 1
	if i < 0 {
		i = len(fs.fields) - 1
	}
	fs.focus(i)
}

// update routes a key to the focused field.
func (fs *fieldSet) update(msg tea.KeyMsg, keys FormKeyMap) tea.Cmd {
	f := &fs.fields[fs.focused]
	if f.isChoice {
		switch {
		case key.Matches(msg, keys.NextOpt):
			f.choice.next()
		case key.Matches(msg, keys.PrevOpt):
			f.choice.prev()
		}
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (fs fieldSet) value(i int) string {
	if fs.fields[i].isChoice {
		return fs.fields[i].choice.value()
	}
	return fs.fields[i].input.Value()
}

// reset empties every input, clears selections and focuses the first field.
// Loaded options are kept.
func (fs *fieldSet) reset() {
	for i := range fs.fields {
		if fs.fields[i].isChoice {
			fs.fields[i].choice.index = -1
		} else {
			fs.fields[i].input.Reset()
		}
	}
	fs.focus(0)
}

func (fs fieldSet) View() []string {
	out := make([]string, 0, len(fs.fields))
	for i, f := range fs.fields {
		label := f.label
		if f.required {
			label += " " + RequiredStyle.Render("*")
		}
		var body string
		if f.isChoice {
			body = f.choice.View()
		} else {
			body = f.input.View()
		}
		out = append(out, renderFormField(label, body, i == fs.focused))
	}
	return out
}

func renderFormField(label, body string, focused bool) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, LabelStyle.Render(label), body))
}
