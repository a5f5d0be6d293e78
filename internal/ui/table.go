package ui

import (
	"fmt"
	"sort"
	"strings"

	"pg360/internal/util"

	"github.com/charmbracelet/lipgloss"
)

type tableColumn struct {
	key    string
	label  string
	width  int
	hidden bool
}

// tableModel is a sortable, filterable list of API records.
type tableModel[T any] struct {
	noun  string // plural, for the status bar
	empty string

	allRows []T
	rows    []T
	cursor  int
	offset  int

	viewportHeight int

	id    func(T) int64
	value func(T, string) string // raw value, used for sort and filter
	cell  func(T, string) string // display value; nil uses value

	columns      []tableColumn
	activeColumn int
	sortKey      string
	sortDesc     bool
	filterKey    string
	filterValue  string
}

func newTableModel[T any](rows []T, noun, empty string, columns []tableColumn, id func(T) int64, value func(T, string) string) *tableModel[T] {
	return &tableModel[T]{
		noun:    noun,
		empty:   empty,
		allRows: append([]T(nil), rows...),
		rows:    append([]T(nil), rows...),
		id:      id,
		value:   value,
		columns: columns,
	}
}

func (m *tableModel[T]) ApplyPrefs(prefs TablePrefs) {
	if prefs.SortKey != "" {
		m.sortKey = prefs.SortKey
		m.sortDesc = prefs.SortDesc
	}
	hidden := make(map[string]bool, len(prefs.HiddenColumns))
	for _, c := range prefs.HiddenColumns {
		hidden[c] = true
	}
	for i := range m.columns {
		m.columns[i].hidden = hidden[m.columns[i].key]
	}
	if prefs.ActiveColumn != "" {
		for i, c := range m.columns {
			if c.key == prefs.ActiveColumn {
				m.activeColumn = i
				break
			}
		}
	}
	m.ensureVisibleActiveColumn()
	m.rebuild()
}

func (m *tableModel[T]) Prefs() TablePrefs {
	var hidden []string
	for _, c := range m.columns {
		if c.hidden {
			hidden = append(hidden, c.key)
		}
	}
	return TablePrefs{
		SortKey:       m.sortKey,
		SortDesc:      m.sortDesc,
		HiddenColumns: hidden,
		ActiveColumn:  m.columns[m.activeColumn].key,
	}
}

// Selected returns the row under the cursor.
func (m *tableModel[T]) Selected() (T, bool) {
	var zero T
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return zero, false
	}
	return m.rows[m.cursor], true
}

func (m *tableModel[T]) rebuild() {
	rows := append([]T(nil), m.allRows...)

	if m.filterKey != "" && m.filterValue != "" {
		filtered := make([]T, 0, len(rows))
		target := strings.TrimSpace(m.filterValue)
		for _, r := range rows {
			if strings.EqualFold(strings.TrimSpace(m.value(r, m.filterKey)), target) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	if m.sortKey != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			left := sortable(m.value(rows[i], m.sortKey))
			right := sortable(m.value(rows[j], m.sortKey))
			if left == right {
				return m.id(rows[i]) < m.id(rows[j])
			}
			if m.sortDesc {
				return left > right
			}
			return left < right
		})
	}

	m.rows = rows
	m.clampCursor()
}

// sortable lowercases text and left-pads integers so "10" sorts after "9".
func sortable(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v != "" && len(v) < 20 && strings.Trim(v, "0123456789") == "" {
		return strings.Repeat("0", 20-len(v)) + v
	}
	return v
}

func (m *tableModel[T]) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

func (m *tableModel[T]) visibleColumnIndexes() []int {
	var idxs []int
	for i, c := range m.columns {
		if !c.hidden {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (m *tableModel[T]) ensureVisibleActiveColumn() {
	if !m.columns[m.activeColumn].hidden {
		return
	}
	for i := range m.columns {
		if !m.columns[i].hidden {
			m.activeColumn = i
			return
		}
	}
	m.columns[0].hidden = false
	m.activeColumn = 0
}

func (m *tableModel[T]) NextColumn() {
	start := m.activeColumn
	for {
		m.activeColumn = (m.activeColumn + 1) % len(m.columns)
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *tableModel[T]) PrevColumn() {
	start := m.activeColumn
	for {
		m.activeColumn--
		if m.activeColumn < 0 {
			m.activeColumn = len(m.columns) - 1
		}
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *tableModel[T]) JumpToColumn(number int) bool {
	if number < 1 || number > len(m.columns) {
		return false
	}
	idx := number - 1
	if m.columns[idx].hidden {
		return false
	}
	m.activeColumn = idx
	return true
}

func (m *tableModel[T]) SortActiveColumn(desc bool) {
	m.sortKey = m.columns[m.activeColumn].key
	m.sortDesc = desc
	m.rebuild()
}

func (m *tableModel[T]) HideActiveColumn() bool {
	if len(m.visibleColumnIndexes()) <= 1 {
		return false
	}
	m.columns[m.activeColumn].hidden = true
	m.ensureVisibleActiveColumn()
	return true
}

func (m *tableModel[T]) ShowAllColumns() {
	for i := range m.columns {
		m.columns[i].hidden = false
	}
}

func (m *tableModel[T]) FilterBySelectedValue() bool {
	row, ok := m.Selected()
	if !ok {
		return false
	}
	key := m.columns[m.activeColumn].key
	value := strings.TrimSpace(m.value(row, key))
	if value == "" {
		return false
	}
	m.filterKey = key
	m.filterValue = value
	m.rebuild()
	return true
}

func (m *tableModel[T]) ClearFilter() bool {
	if m.filterKey == "" {
		return false
	}
	m.filterKey = ""
	m.filterValue = ""
	m.rebuild()
	return true
}

func (m *tableModel[T]) TableMeta() string {
	col := strings.ToUpper(m.columns[m.activeColumn].label)
	parts := []string{fmt.Sprintf("col %s", col)}
	if m.sortKey != "" {
		order := "asc"
		if m.sortDesc {
			order = "desc"
		}
		parts = append(parts, fmt.Sprintf("ordem %s %s", strings.ToUpper(m.sortKey), order))
	}
	if m.filterKey != "" {
		parts = append(parts, fmt.Sprintf("filtro %s=%q", strings.ToUpper(m.filterKey), m.filterValue))
	}
	return strings.Join(parts, "  ·  ")
}

// View renders the table.
func (m *tableModel[T]) View(width, height int) string {
	if len(m.rows) == 0 {
		msg := m.empty
		if m.filterKey != "" {
			msg = "Nenhum registro para o filtro atual. Pressione  N  para limpar."
		}
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(msg)
	}

	visible := m.visibleColumnIndexes()
	widths := make([]int, 0, len(visible))
	headers := make([]string, 0, len(visible))
	total := 0
	for _, idx := range visible {
		col := m.columns[idx]
		label := formatHeaderLabel(col.label)
		if idx == m.activeColumn {
			label = renderActiveHeaderLabel(label)
		}
		if m.sortKey == col.key {
			if m.sortDesc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		cellWidth := max(col.width+2, lipgloss.Width(label)+4)
		total += cellWidth
		widths = append(widths, cellWidth)
		headers = append(headers, label)
	}
	if extra := width - total - 2; extra > 0 && len(widths) > 0 {
		widths[len(widths)-1] += extra
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := max(1, height-3)
	m.viewportHeight = visibleHeight
	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		cells := make([]string, 0, len(visible))
		for _, idx := range visible {
			col := m.columns[idx]
			v := m.value(m.rows[i], col.key)
			if m.cell != nil {
				v = m.cell(m.rows[i], col.key)
			}
			if v == "" {
				v = "—"
			}
			cells = append(cells, util.TruncateString(v, col.width))
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	filterInfo := ""
	if m.filterKey != "" {
		filterInfo = fmt.Sprintf("  ·  filtrados: %d/%d", len(m.rows), len(m.allRows))
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d %s  ·  linha %d/%d%s  ·  %s",
		len(m.rows), m.noun, m.cursor+1, len(m.rows), filterInfo, m.TableMeta()))

	content := lipgloss.JoinVertical(lipgloss.Left, header, divider, strings.Join(rows, "\n"))
	spacer := lipgloss.NewStyle().Height(max(0, height-lipgloss.Height(content)-lipgloss.Height(status))).Render("")

	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, status)
}

func (m *tableModel[T]) viewport() int {
	if m.viewportHeight == 0 {
		return 10
	}
	return m.viewportHeight
}

// MoveDown moves the cursor down.
func (m *tableModel[T]) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		if m.cursor >= m.offset+m.viewport() {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *tableModel[T]) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first row.
func (m *tableModel[T]) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *tableModel[T]) JumpToBottom() {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = len(m.rows) - 1
	if vh := m.viewport(); m.cursor >= vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageDown moves down half a page.
func (m *tableModel[T]) HalfPageDown(pageSize int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(m.cursor+pageSize/2, len(m.rows)-1)
	if vh := m.viewport(); m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *tableModel[T]) HalfPageUp(pageSize int) {
	m.cursor = max(m.cursor-pageSize/2, 0)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).MaxWidth(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", total))
}

func formatHeaderLabel(label string) string {
	return strings.ToUpper(label)
}

func renderActiveHeaderLabel(label string) string {
	return "▸ " + label
}
