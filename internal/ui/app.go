package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"pg360/internal/api"
	"pg360/internal/auth"
	"pg360/internal/form"
	"pg360/internal/model"
	"pg360/internal/storage"
	"pg360/internal/toast"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var tabs = []struct {
	name   string
	screen model.Screen
}{
	{"Início", model.ScreenHome},
	{"Eventos", model.ScreenEvents},
	{"Categorias", model.ScreenCategories},
	{"Locais", model.ScreenPlaces},
}

// Model is the root Bubble Tea model.
type Model struct {
	client *api.Client
	kv     storage.KV
	creds  *auth.Credentials

	screen model.Screen
	mode   model.Mode
	gState GState
	user   string

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	columnJump  bool

	// Screen models
	login       *LoginModel
	carousel    *CarouselModel
	events      *EventsModel
	categories  *CategoriesModel
	places      *PlacesModel
	eventDetail *EventDetailModel
	form        *FormModel

	toasts   toast.Notifier
	keys     KeyMap
	formKeys FormKeyMap
	prefs    UIPreferences
}

// New creates the root model. A nil creds accepts any login.
func New(client *api.Client, kv storage.KV, creds *auth.Credentials) Model {
	m := Model{
		client:   client,
		kv:       kv,
		creds:    creds,
		mode:     model.ModeNav,
		gState:   GStateIdle,
		carousel: NewCarouselModel(),
		toasts:   toast.New(toast.DefaultDelay),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
		prefs:    loadUIPreferences(kv),
	}
	m.screen = auth.Guard(kv, model.ScreenHome)
	if m.screen == model.ScreenLogin {
		m.login = NewLoginModel()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.screen == model.ScreenHome {
		return m.carousel.Init(m.client)
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Dismiss) {
			m.toasts.Dismiss()
			return m, nil
		}
		if m.screen == model.ScreenLogin {
			return m.updateLogin(msg)
		}

		if m.mode == model.ModeNav && m.columnJump {
			if msg.String() == "esc" {
				m.columnJump = false
				m.info = ""
				return m, nil
			}
			if n, err := strconv.Atoi(msg.String()); err == nil {
				if t := m.currentTable(); t != nil && t.JumpToColumn(n) {
					m.columnJump = false
					m.info = fmt.Sprintf("Coluna %d", n)
					m.persistCurrentTablePrefs()
					return m, nil
				}
				m.info = fmt.Sprintf("Coluna %d indisponível", n)
				return m, nil
			}
		}

		if key.Matches(msg, m.keys.Help) && m.mode == model.ModeNav {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
		return m.handleNavMode(msg)

	case toast.ShowMsg:
		return m, m.toasts.Show(msg.Toast)

	case toast.ExpireMsg:
		m.toasts.Expire(msg)
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.EventsLoadedMsg:
		m.events = NewEventsModel(msg.Events)
		m.events.ApplyPrefs(m.prefs.Events)
		m.error = ""
		return m, nil

	case model.CategoriesLoadedMsg:
		m.categories = NewCategoriesModel(msg.Categories)
		m.categories.ApplyPrefs(m.prefs.Categories)
		m.error = ""
		return m, nil

	case model.PlacesLoadedMsg:
		m.places = NewPlacesModel(msg.Places)
		m.places.ApplyPrefs(m.prefs.Places)
		m.error = ""
		return m, nil

	case model.CarouselLoadedMsg, carouselTickMsg, carouselImageMsg, spinner.TickMsg:
		return m, m.carousel.Update(m.client, msg)

	case refsLoadedMsg:
		if !m.formMounted(msg.formID) {
			log.Printf("ui: dropping %s list for unmounted form %s", msg.kind, msg.formID)
			return m, nil
		}
		return m.handleInsertMode(msg)

	case formResultMsg:
		if !m.formMounted(msg.formID) {
			log.Printf("ui: dropping submission result for unmounted form %s (err=%v)", msg.formID, msg.result.Err)
			return m, nil
		}
		return m.handleInsertMode(msg)

	case model.EntitySavedMsg:
		return m, loadListCmd(m.client, msg.Screen)

	case model.FormCancelledMsg:
		owner := model.ScreenHome
		if m.form != nil {
			owner = m.form.screen
		}
		m.form = nil
		m.mode = model.ModeNav
		return m.navigate(owner)

	case loginResultMsg:
		if m.login == nil {
			return m, nil
		}
		newLogin, cmd := m.login.Update(msg, m.creds, m.kv)
		m.login = &newLogin
		return m, cmd

	case model.LoggedInMsg:
		m.user = msg.User
		m.login = nil
		return m.navigate(model.ScreenHome)

	case model.LoggedOutMsg:
		m.user = ""
		return m.navigate(model.ScreenHome)
	}

	return m, nil
}

// navigate switches screens through the login guard and starts whatever the
// target screen needs to load.
func (m Model) navigate(target model.Screen) (Model, tea.Cmd) {
	screen := auth.Guard(m.kv, target)
	m.screen = screen
	m.columnJump = false
	m.showingHelp = false
	m.info = ""
	if !screen.IsForm() {
		m.form = nil
		m.mode = model.ModeNav
	}

	switch screen {
	case model.ScreenLogin:
		if m.login == nil {
			m.login = NewLoginModel()
		}
		return m, nil
	case model.ScreenHome:
		if m.carousel.Stale() {
			m.carousel.Reset()
			return m, m.carousel.Init(m.client)
		}
	case model.ScreenEvents:
		if m.events == nil {
			return m, loadEventsCmd(m.client)
		}
	case model.ScreenCategories:
		if m.categories == nil {
			return m, loadCategoriesCmd(m.client)
		}
	case model.ScreenPlaces:
		if m.places == nil {
			return m, loadPlacesCmd(m.client)
		}
	case model.ScreenEventForm:
		return m.mountForm(NewEventFormModel(m.client))
	case model.ScreenCategoryForm:
		return m.mountForm(NewCategoryFormModel(m.client))
	case model.ScreenPlaceForm:
		return m.mountForm(NewPlaceFormModel(m.client))
	}
	return m, nil
}

func (m Model) mountForm(f *FormModel) (Model, tea.Cmd) {
	m.form = f
	m.mode = model.ModeInsert
	return m, f.Init()
}

func (m Model) formMounted(id string) bool {
	return m.form != nil && m.form.ID() == id
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.keys, m.formKeys, m.width, m.height)
	}

	showTabs := m.isTopLevel()
	contentHeight := m.height - 4 // header + footer
	if showTabs {
		contentHeight -= 2
	}

	var banners []string
	if t := m.toasts.View(m.width); t != "" {
		banners = append(banners, t)
	}
	if m.error != "" {
		banners = append(banners, ErrorStyle.Width(m.width).Render("Erro: "+m.error))
	}
	if m.info != "" {
		banners = append(banners, SuccessStyle.Width(m.width).Render(m.info))
	}
	contentHeight -= len(banners)

	var content string
	var breadcrumb []string

	switch m.screen {
	case model.ScreenLogin:
		breadcrumb = []string{"Entrar"}
		if m.login != nil {
			content = m.login.View(m.width, contentHeight)
		}
	case model.ScreenHome:
		breadcrumb = []string{"Início"}
		content = m.carousel.View(m.width, contentHeight)
	case model.ScreenEvents:
		breadcrumb = []string{"Eventos"}
		if m.events != nil {
			content = m.events.View(m.width, contentHeight)
		}
	case model.ScreenCategories:
		breadcrumb = []string{"Categorias"}
		if m.categories != nil {
			content = m.categories.View(m.width, contentHeight)
		}
	case model.ScreenPlaces:
		breadcrumb = []string{"Locais"}
		if m.places != nil {
			content = m.places.View(m.width, contentHeight)
		}
	case model.ScreenEventDetail:
		breadcrumb = []string{"Eventos", "Detalhe"}
		if m.eventDetail != nil {
			breadcrumb = []string{"Eventos", m.eventDetail.event.Name}
			content = m.eventDetail.View(m.width, contentHeight)
		}
	case model.ScreenEventForm, model.ScreenCategoryForm, model.ScreenPlaceForm:
		if m.form != nil {
			breadcrumb = []string{screenName(m.form.screen), "Cadastrar"}
			content = m.form.View(m.width, contentHeight)
		}
	}

	content = lipgloss.NewStyle().
		Width(m.width).
		Height(max(0, contentHeight)).
		Render(content)

	parts := []string{m.renderHeader(breadcrumb)}
	if showTabs {
		parts = append(parts, renderTabs(m.screen, m.width))
	}
	parts = append(parts, banners...)
	parts = append(parts, content, RenderHelp(m.keys, m.formKeys, m.screen, m.mode, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) isTopLevel() bool {
	for _, t := range tabs {
		if t.screen == m.screen {
			return true
		}
	}
	return false
}

func screenName(s model.Screen) string {
	for _, t := range tabs {
		if t.screen == s {
			return t.name
		}
	}
	return ""
}

func renderTabs(screen model.Screen, width int) string {
	var tabStrings []string
	for i, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(fmt.Sprintf("%d %s", i+1, tab.name)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...))
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("pg360 admin")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := time.Now().Format("02/01/2006")
	if m.user != "" {
		right = m.user + "  ·  " + right
	}
	right = BreadcrumbStyle.Render(right) + "  "

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login == nil {
		m.login = NewLoginModel()
	}
	newLogin, cmd := m.login.Update(msg, m.creds, m.kv)
	m.login = &newLogin
	return m, cmd
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t := m.currentTable(); t != nil {
		switch {
		case key.Matches(msg, m.keys.NextColumn):
			t.NextColumn()
			m.persistCurrentTablePrefs()
			return m, nil
		case key.Matches(msg, m.keys.PrevColumn):
			t.PrevColumn()
			m.persistCurrentTablePrefs()
			return m, nil
		case key.Matches(msg, m.keys.ColumnJump):
			m.columnJump = true
			m.info = "Ir para coluna: pressione 1-9 (esc cancela)"
			return m, nil
		case key.Matches(msg, m.keys.SortAsc):
			t.SortActiveColumn(false)
			m.info = "Ordem crescente"
			m.persistCurrentTablePrefs()
			return m, nil
		case key.Matches(msg, m.keys.SortDesc):
			t.SortActiveColumn(true)
			m.info = "Ordem decrescente"
			m.persistCurrentTablePrefs()
			return m, nil
		case key.Matches(msg, m.keys.HideColumn):
			if t.HideActiveColumn() {
				m.info = "Coluna oculta"
				m.persistCurrentTablePrefs()
			} else {
				m.info = "A última coluna visível não pode ser ocultada"
			}
			return m, nil
		case key.Matches(msg, m.keys.ShowColumns):
			t.ShowAllColumns()
			m.info = "Todas as colunas visíveis"
			m.persistCurrentTablePrefs()
			return m, nil
		case key.Matches(msg, m.keys.FilterValue):
			if t.FilterBySelectedValue() {
				m.info = "Filtro aplicado"
			} else {
				m.info = "Nada para filtrar na célula selecionada"
			}
			return m, nil
		case key.Matches(msg, m.keys.ClearFilter):
			if t.ClearFilter() {
				m.info = "Filtro removido"
			}
			return m, nil
		}

		// "gg" state machine
		if msg.String() == "g" {
			if m.gState == GStateFirstG {
				m.gState = GStateIdle
				t.JumpToTop()
				return m, nil
			}
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle

		switch {
		case key.Matches(msg, m.keys.Down):
			t.MoveDown()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			t.MoveUp()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			t.JumpToBottom()
			return m, nil
		case key.Matches(msg, m.keys.HalfPageDown):
			t.HalfPageDown(m.height / 2)
			return m, nil
		case key.Matches(msg, m.keys.HalfPageUp):
			t.HalfPageUp(m.height / 2)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Logout):
		if err := auth.Logout(m.kv); err != nil {
			log.Printf("auth: logout: %v", err)
			m.error = "Não foi possível sair."
			return m, nil
		}
		return m, func() tea.Msg { return model.LoggedOutMsg{} }
	case key.Matches(msg, m.keys.Home):
		return m.navigate(model.ScreenHome)
	case key.Matches(msg, m.keys.Events):
		return m.navigate(model.ScreenEvents)
	case key.Matches(msg, m.keys.Categories):
		return m.navigate(model.ScreenCategories)
	case key.Matches(msg, m.keys.Places):
		return m.navigate(model.ScreenPlaces)
	}

	switch m.screen {
	case model.ScreenHome:
		return m.handleHomeNav(msg)
	case model.ScreenEvents, model.ScreenCategories, model.ScreenPlaces:
		return m.handleListNav(msg)
	case model.ScreenEventDetail:
		if key.Matches(msg, m.keys.Back) {
			m.eventDetail = nil
			return m.navigate(model.ScreenEvents)
		}
	}
	return m, nil
}

func (m Model) handleHomeNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevSlide):
		return m, m.carousel.Prev()
	case key.Matches(msg, m.keys.NextSlide):
		return m, m.carousel.Next()
	case key.Matches(msg, m.keys.PrevTab):
		return m.navigate(tabs[len(tabs)-1].screen)
	case key.Matches(msg, m.keys.NextTab):
		return m.navigate(tabs[1].screen)
	case key.Matches(msg, m.keys.Reload):
		m.carousel.Reset()
		return m, m.carousel.Init(m.client)
	}
	return m, nil
}

func (m Model) handleListNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.NextTab):
		step := 1
		if key.Matches(msg, m.keys.PrevTab) {
			step = len(tabs) - 1
		}
		for i, t := range tabs {
			if t.screen == m.screen {
				return m.navigate(tabs[(i+step)%len(tabs)].screen)
			}
		}
	case key.Matches(msg, m.keys.Reload):
		m.error = ""
		return m, loadListCmd(m.client, m.screen)
	case key.Matches(msg, m.keys.Add):
		switch m.screen {
		case model.ScreenEvents:
			return m.navigate(model.ScreenEventForm)
		case model.ScreenCategories:
			return m.navigate(model.ScreenCategoryForm)
		case model.ScreenPlaces:
			return m.navigate(model.ScreenPlaceForm)
		}
	case key.Matches(msg, m.keys.Select):
		if m.screen == model.ScreenEvents && m.events != nil {
			if e, ok := m.events.Selected(); ok {
				m.eventDetail = NewEventDetailModel(e)
				return m.navigate(model.ScreenEventDetail)
			}
		}
	}
	return m, nil
}

// handleInsertMode routes keys and form messages to the mounted form.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = model.ModeNav
		return m, nil
	}
	// Every navigation goes through the guard, forms included.
	if _, ok := msg.(tea.KeyMsg); ok && !auth.LoggedIn(m.kv) {
		return m.navigate(m.screen)
	}
	newForm, cmd := m.form.Update(msg)
	m.form = &newForm
	return m, cmd
}

func (m *Model) currentTable() tableController {
	switch m.screen {
	case model.ScreenEvents:
		if m.events != nil {
			return m.events
		}
	case model.ScreenCategories:
		if m.categories != nil {
			return m.categories
		}
	case model.ScreenPlaces:
		if m.places != nil {
			return m.places
		}
	}
	return nil
}

func (m *Model) persistCurrentTablePrefs() {
	switch m.screen {
	case model.ScreenEvents:
		if m.events != nil {
			m.prefs.Events = m.events.Prefs()
		}
	case model.ScreenCategories:
		if m.categories != nil {
			m.prefs.Categories = m.categories.Prefs()
		}
	case model.ScreenPlaces:
		if m.places != nil {
			m.prefs.Places = m.places.Prefs()
		}
	}
	if err := saveUIPreferences(m.kv, m.prefs); err != nil {
		log.Printf("ui: %v", err)
	}
}

// Commands

func loadListCmd(client *api.Client, screen model.Screen) tea.Cmd {
	switch screen {
	case model.ScreenEvents:
		return loadEventsCmd(client)
	case model.ScreenCategories:
		return loadCategoriesCmd(client)
	case model.ScreenPlaces:
		return loadPlacesCmd(client)
	}
	return nil
}

func loadEventsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		events, err := client.ListEvents(context.Background())
		if err != nil {
			return listError("eventos", err)
		}
		return model.EventsLoadedMsg{Events: events}
	}
}

func loadCategoriesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		categories, err := client.ListCategories(context.Background())
		if err != nil {
			return listError("categorias", err)
		}
		return model.CategoriesLoadedMsg{Categories: categories}
	}
}

func loadPlacesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		places, err := client.ListPlaces(context.Background())
		if err != nil {
			return listError("locais", err)
		}
		return model.PlacesLoadedMsg{Places: places}
	}
}

func listError(what string, err error) model.ErrorMsg {
	log.Printf("erro técnico: load %s: %v", what, err)
	return model.ErrorMsg{Err: fmt.Errorf("não foi possível carregar %s: %s", what, form.Describe(err))}
}
