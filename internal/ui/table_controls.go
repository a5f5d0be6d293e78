package ui

// tableController is the column and cursor surface shared by the list tabs.
type tableController interface {
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	SortActiveColumn(desc bool)
	HideActiveColumn() bool
	ShowAllColumns()
	FilterBySelectedValue() bool
	ClearFilter() bool
	TableMeta() string

	MoveDown()
	MoveUp()
	JumpToTop()
	JumpToBottom()
	HalfPageDown(pageSize int)
	HalfPageUp(pageSize int)
	Prefs() TablePrefs
}
