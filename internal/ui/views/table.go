package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
	"storyfreak/internal/table"
)

const (
	checkboxWidth = 4
	avatarWidth   = 3
	actionsTitle  = "ACTIONS"
	minColWidth   = 6
	maxColWidth   = 28
)

// TableView contains all the state needed to render a data table
type TableView struct {
	State       *table.State
	Cursor      int // index into the derived view, -1 for none
	FocusColumn int // index into the columns, -1 for none
	Selectable  bool
	ShowActions bool
	Loading     bool
	LoadingRows int
}

// TableRenderer renders data tables
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Render produces the full table: controls, header and body, or the
// loading and empty placeholders.
func (r *TableRenderer) Render(v TableView) string {
	cols := v.State.Columns()
	rows := v.State.View()
	widths := r.columnWidths(cols, rows)

	if v.Loading {
		return r.renderLoading(v, cols, widths)
	}
	if len(v.State.Rows()) == 0 {
		return r.renderEmpty()
	}

	var lines []string
	if v.Selectable {
		lines = append(lines, r.renderControls(v.State), "")
	}
	lines = append(lines, r.renderHeader(v, cols, widths))
	for i, row := range rows {
		lines = append(lines, r.renderRow(v, i, row, cols, widths))
	}
	return strings.Join(lines, "\n")
}

// SelectionSummary is the "N of M selected" text
func SelectionSummary(s *table.State) string {
	return fmt.Sprintf("%d of %d selected", len(s.Selection()), len(s.Rows()))
}

// SelectAllLabel names the action the select-all control performs next
func SelectAllLabel(s *table.State) string {
	if s.AllSelected() {
		return "Deselect All"
	}
	return "Select All"
}

// HeaderCheckbox renders the tri-state select-all box
func HeaderCheckbox(s *table.State) string {
	switch {
	case s.AllSelected():
		return "[x]"
	case s.SomeSelected():
		return "[-]"
	default:
		return "[ ]"
	}
}

// SortIndicator returns the arrow shown next to a sortable column title
// and whether that column is the active sort.
func SortIndicator(cfg table.SortConfig, columnKey string) (string, bool) {
	if cfg.Key != columnKey {
		return "▲", false
	}
	switch cfg.Direction {
	case table.Ascending:
		return "▲", true
	case table.Descending:
		return "▼", true
	}
	return "▲", false
}

// Initials returns up to two upper-case initials of name
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	out := []rune(b.String())
	if len(out) > 2 {
		out = out[:2]
	}
	return string(out)
}

func (r *TableRenderer) renderControls(s *table.State) string {
	summary := r.styles.Dim.Render(SelectionSummary(s))
	action := r.styles.Link.Render("[a] " + SelectAllLabel(s))
	tools := r.styles.Help.Render("Export · Filter")
	return lipgloss.JoinHorizontal(lipgloss.Top, summary, "   ", action, "   ", tools)
}

func (r *TableRenderer) renderHeader(v TableView, cols []table.Column, widths []int) string {
	var cells []string
	cells = append(cells, r.styles.Header.Render("  "))
	if v.Selectable {
		cells = append(cells, r.styles.Header.Width(checkboxWidth).Render(HeaderCheckbox(v.State)))
	}

	cfg := v.State.SortConfig()
	for i, c := range cols {
		st := r.styles.Header
		if i == v.FocusColumn {
			st = r.styles.HeaderFocus
		}
		title := st.Render(strings.ToUpper(c.Title))
		if c.Sortable {
			arrow, active := SortIndicator(cfg, c.Key)
			arrowStyle := r.styles.SortIdle
			if active {
				arrowStyle = r.styles.SortActive
			}
			title = title + r.styles.Header.Render(" ") + arrowStyle.Render(arrow)
		}
		cells = append(cells, pad(title, widths[i]+1, r.styles.Header))
	}

	if v.ShowActions {
		cells = append(cells, r.styles.Header.Render(actionsTitle))
	}
	return strings.Join(cells, "")
}

func (r *TableRenderer) renderRow(v TableView, idx int, row *table.Row, cols []table.Column, widths []int) string {
	selected := v.State.IsSelected(row)

	var cells []string
	if idx == v.Cursor {
		cells = append(cells, r.styles.Cursor.Render("› "))
	} else {
		cells = append(cells, "  ")
	}
	if v.Selectable {
		box := "[ ]"
		if selected {
			box = "[x]"
		}
		cells = append(cells, lipgloss.NewStyle().Width(checkboxWidth).Render(box))
	}

	for i, c := range cols {
		cells = append(cells, pad(r.renderCell(c, row), widths[i]+1, lipgloss.NewStyle()))
	}

	if v.ShowActions {
		cells = append(cells, r.styles.Link.Render("Edit")+"  "+r.styles.Danger.Render("Delete"))
	}

	line := strings.Join(cells, "")
	if selected {
		line = r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *TableRenderer) renderCell(c table.Column, row *table.Row) string {
	value := row.String(c.DataIndex)
	text := truncate(value, maxColWidth)
	switch c.Key {
	case "name":
		avatar := r.styles.Avatar.Background(AvatarColor(value)).Render(fmt.Sprintf("%-2s", Initials(value)))
		return avatar + " " + r.styles.Cell.Render(text)
	case "status":
		status, _ := domain.ParseUserStatus(text)
		return r.styles.StatusBadgeStyle(status).Render(text)
	}
	return r.styles.Cell.Render(text)
}

func (r *TableRenderer) renderLoading(v TableView, cols []table.Column, widths []int) string {
	n := v.LoadingRows
	if n <= 0 {
		n = 5
	}

	var cells []string
	cells = append(cells, r.styles.Header.Render("  "))
	if v.Selectable {
		cells = append(cells, r.styles.Header.Width(checkboxWidth).Render(""))
	}
	for i, c := range cols {
		cells = append(cells, pad(r.styles.Header.Render(strings.ToUpper(c.Title)), widths[i]+1, r.styles.Header))
	}
	lines := []string{strings.Join(cells, "")}

	for i := 0; i < n; i++ {
		row := []string{"  "}
		if v.Selectable {
			row = append(row, pad(r.styles.Skeleton.Render("▇"), checkboxWidth, lipgloss.NewStyle()))
		}
		for j, c := range cols {
			var bar string
			switch c.Key {
			case "name":
				bar = r.styles.Skeleton.Render("●● " + strings.Repeat("▇", 8))
			case "status":
				bar = r.styles.Skeleton.Render(strings.Repeat("▇", 6))
			default:
				bar = r.styles.Skeleton.Render(strings.Repeat("▇", min(widths[j], 12)))
			}
			row = append(row, pad(bar, widths[j]+1, lipgloss.NewStyle()))
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}

func (r *TableRenderer) renderEmpty() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Skeleton.Render("▤"),
		"",
		r.styles.Title.Render("No data found"),
		r.styles.Help.Render("There are no records to display at the moment."),
		"",
		r.styles.Link.Render("[+] Add New Record"),
	)
	return lipgloss.NewStyle().Padding(1, 4).Render(body)
}

func (r *TableRenderer) columnWidths(cols []table.Column, rows []*table.Row) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := utf8.RuneCountInString(c.Title)
		if c.Sortable {
			w += 2
		}
		for _, row := range rows {
			cw := utf8.RuneCountInString(truncate(row.String(c.DataIndex), maxColWidth))
			switch c.Key {
			case "name":
				cw += avatarWidth
			case "status":
				cw += 2
			}
			if cw > w {
				w = cw
			}
		}
		if w < minColWidth {
			w = minColWidth
		}
		widths[i] = w
	}
	return widths
}

// pad right-fills s to width using st for the filler
func pad(s string, width int, st lipgloss.Style) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + st.Render(strings.Repeat(" ", gap))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
