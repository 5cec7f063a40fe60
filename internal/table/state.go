package table

import "sort"

// Direction is the sort direction of a column
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// SortConfig describes the active sort. Key is empty exactly when
// Direction is DirectionNone.
type SortConfig struct {
	Key       string
	Field     string // row field to order by; Key is used when empty
	Direction Direction
}

// Sorted reports whether a column sort is active
func (c SortConfig) Sorted() bool {
	return c.Key != "" && c.Direction != DirectionNone
}

func (c SortConfig) field() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Key
}

// DeriveView returns rows as they should be displayed under cfg. Without
// an active sort the input slice itself is returned; otherwise a new,
// stably sorted slice. rows is never modified.
func DeriveView(rows []*Row, cfg SortConfig) []*Row {
	if !cfg.Sorted() {
		return rows
	}

	field := cfg.field()
	view := make([]*Row, len(rows))
	copy(view, rows)
	sort.SliceStable(view, func(i, j int) bool {
		c := Compare(view[i].Get(field), view[j].Get(field))
		if cfg.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return view
}

// SelectionObserver receives the full selection after every selection change
type SelectionObserver func(selected []*Row)

// Option configures a State
type Option func(*State)

// WithSelectionObserver registers fn to be called after each selection change
func WithSelectionObserver(fn SelectionObserver) Option {
	return func(s *State) {
		s.observer = fn
	}
}

// State owns the sort configuration and row selection of one table and the
// view derived from them. It is not safe for concurrent use; the UI drives
// it from a single goroutine.
type State struct {
	columns  []Column
	rows     []*Row
	view     []*Row
	sort     SortConfig
	selected []*Row
	observer SelectionObserver
}

// NewState creates an unsorted table state with an empty selection
func NewState(columns []Column, rows []*Row, opts ...Option) *State {
	s := &State{
		columns: columns,
		rows:    rows,
		view:    rows,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Columns returns the table columns
func (s *State) Columns() []Column {
	return s.columns
}

// Column looks a column up by key
func (s *State) Column(key string) (Column, bool) {
	for _, c := range s.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Rows returns the caller's rows in their original order
func (s *State) Rows() []*Row {
	return s.rows
}

// SetRows replaces the input rows and re-derives the view. The selection
// is kept as-is.
func (s *State) SetRows(rows []*Row) {
	s.rows = rows
	s.view = DeriveView(rows, s.sort)
}

// View returns the rows in display order
func (s *State) View() []*Row {
	out := make([]*Row, len(s.view))
	copy(out, s.view)
	return out
}

// SortConfig returns the active sort
func (s *State) SortConfig() SortConfig {
	return s.sort
}

// ApplySort advances the sort cycle for columnKey: ascending, then
// descending, then cleared. Unknown and unsortable columns are ignored;
// the return value reports whether anything changed.
func (s *State) ApplySort(columnKey string) bool {
	col, ok := s.Column(columnKey)
	if !ok || !col.Sortable {
		return false
	}

	switch {
	case s.sort.Key != columnKey:
		s.sort = SortConfig{Key: columnKey, Field: col.DataIndex, Direction: Ascending}
	case s.sort.Direction == Ascending:
		s.sort = SortConfig{Key: columnKey, Field: col.DataIndex, Direction: Descending}
	default:
		s.sort = SortConfig{}
	}

	s.view = DeriveView(s.rows, s.sort)
	return true
}

// Selection returns the selected rows in the order they were selected
func (s *State) Selection() []*Row {
	out := make([]*Row, len(s.selected))
	copy(out, s.selected)
	return out
}

// IsSelected reports whether row is in the selection
func (s *State) IsSelected(row *Row) bool {
	return s.indexOf(row) >= 0
}

// ToggleRowSelection adds row to or removes it from the selection and
// notifies the observer.
func (s *State) ToggleRowSelection(row *Row, selected bool) {
	idx := s.indexOf(row)
	switch {
	case selected && idx < 0 && row != nil:
		s.selected = append(s.selected, row)
	case !selected && idx >= 0:
		s.selected = append(s.selected[:idx:idx], s.selected[idx+1:]...)
	}
	s.notify()
}

// ToggleSelectAll selects every row in view order, or clears the selection,
// and notifies the observer.
func (s *State) ToggleSelectAll(selected bool) {
	if selected {
		s.selected = make([]*Row, len(s.view))
		copy(s.selected, s.view)
	} else {
		s.selected = nil
	}
	s.notify()
}

// AllSelected is true when the table has rows and every one is selected
func (s *State) AllSelected() bool {
	return len(s.rows) > 0 && len(s.selected) == len(s.rows)
}

// SomeSelected is true for a partial selection
func (s *State) SomeSelected() bool {
	return len(s.selected) > 0 && len(s.selected) < len(s.rows)
}

func (s *State) indexOf(row *Row) int {
	for i, r := range s.selected {
		if r == row {
			return i
		}
	}
	return -1
}

func (s *State) notify() {
	if s.observer != nil {
		s.observer(s.Selection())
	}
}
