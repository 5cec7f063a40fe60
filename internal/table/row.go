package table

// Row is one record of a table. Rows are compared by pointer identity,
// never by content, so callers must keep handing the same *Row back.
type Row struct {
	fields map[string]any
}

// NewRow copies fields into a new row
func NewRow(fields map[string]any) *Row {
	r := &Row{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.fields[k] = v
	}
	return r
}

// Get returns the value stored under field, or nil
func (r *Row) Get(field string) any {
	if r == nil {
		return nil
	}
	return r.fields[field]
}

// String returns the value under field formatted for display
func (r *Row) String(field string) string {
	return Format(r.Get(field))
}

// Column is display and sort metadata bound to one row field
type Column struct {
	Key       string // unique per table
	Title     string
	DataIndex string // field read from each Row
	Sortable  bool
}
