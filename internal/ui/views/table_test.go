package views

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyfreak/internal/domain"
	"storyfreak/internal/table"
	"storyfreak/internal/users"
)

func newUserTable(list []domain.User) *table.State {
	return table.NewState(users.Columns(), users.Rows(list))
}

func render(s *table.State, mod func(*TableView)) string {
	v := TableView{State: s, Cursor: -1, FocusColumn: -1, Selectable: true, ShowActions: true}
	if mod != nil {
		mod(&v)
	}
	return NewTableRenderer(NewStyles(domain.ThemeLight)).Render(v)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("John Doe"))
	assert.Equal(t, "MA", Initials("mary ann lee"))
	assert.Equal(t, "C", Initials("Cher"))
	assert.Equal(t, "ÉZ", Initials("élodie zed"))
	assert.Equal(t, "AB", Initials("a  b"))
	assert.Equal(t, "", Initials(""))
}

func TestAvatarColorCyclesOnLength(t *testing.T) {
	assert.Equal(t, AvatarColor("abcdefgh"), AvatarColor(""))
	assert.Equal(t, lipgloss.Color("135"), AvatarColor("a"))
	assert.NotEqual(t, AvatarColor("ab"), AvatarColor("abc"))
}

func TestStatusBadgeStyle(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	assert.Equal(t, lipgloss.Color("157"), s.StatusBadgeStyle(domain.StatusActive).GetBackground())
	assert.Equal(t, lipgloss.Color("229"), s.StatusBadgeStyle(domain.StatusPending).GetBackground())
	assert.Equal(t, lipgloss.Color("224"), s.StatusBadgeStyle(domain.StatusInactive).GetBackground())
	assert.Equal(t, lipgloss.Color("253"), s.StatusBadgeStyle(domain.StatusUnknown).GetBackground())
	assert.True(t, s.StatusBadgeStyle(domain.StatusActive).GetBold())
}

func TestHeaderCheckbox(t *testing.T) {
	rows := users.Rows(users.Seed()[:2])
	s := table.NewState(users.Columns(), rows)
	assert.Equal(t, "[ ]", HeaderCheckbox(s))

	s.ToggleRowSelection(rows[0], true)
	assert.Equal(t, "[-]", HeaderCheckbox(s))
	assert.Equal(t, "Select All", SelectAllLabel(s))

	s.ToggleRowSelection(rows[1], true)
	assert.Equal(t, "[x]", HeaderCheckbox(s))
	assert.Equal(t, "Deselect All", SelectAllLabel(s))
	assert.Equal(t, "2 of 2 selected", SelectionSummary(s))
}

func TestSortIndicator(t *testing.T) {
	arrow, active := SortIndicator(table.SortConfig{}, "name")
	assert.Equal(t, "▲", arrow)
	assert.False(t, active)

	arrow, active = SortIndicator(table.SortConfig{Key: "name", Direction: table.Descending}, "name")
	assert.Equal(t, "▼", arrow)
	assert.True(t, active)

	arrow, active = SortIndicator(table.SortConfig{Key: "email", Direction: table.Ascending}, "name")
	assert.Equal(t, "▲", arrow)
	assert.False(t, active)
}

func TestRenderFollowsDerivedView(t *testing.T) {
	s := newUserTable(users.Seed()[:3])
	s.ApplySort("name")

	out := render(s, nil)
	jane := strings.Index(out, "Jane Smith")
	john := strings.Index(out, "John Doe")
	mike := strings.Index(out, "Mike Brown")
	require.True(t, jane >= 0 && john >= 0 && mike >= 0)
	assert.Less(t, jane, john)
	assert.Less(t, john, mike)

	assert.Contains(t, out, "0 of 3 selected")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ACTIONS")
	assert.Contains(t, out, "JD")
	assert.Contains(t, out, "Pending")
}

func TestRenderMarksSelectionAndCursor(t *testing.T) {
	s := newUserTable(users.Seed()[:2])
	s.ToggleRowSelection(s.View()[1], true)

	out := render(s, func(v *TableView) { v.Cursor = 0 })
	lines := strings.Split(out, "\n")

	var janeLine, johnLine string
	for _, l := range lines {
		if strings.Contains(l, "Jane Smith") {
			janeLine = l
		}
		if strings.Contains(l, "John Doe") {
			johnLine = l
		}
	}
	assert.Contains(t, janeLine, "[x]")
	assert.Contains(t, johnLine, "[ ]")
	assert.Contains(t, johnLine, "›")
	assert.Contains(t, out, "[-]")
}

func TestRenderWithoutSelectionOrActions(t *testing.T) {
	s := newUserTable(users.Seed()[:1])
	out := render(s, func(v *TableView) {
		v.Selectable = false
		v.ShowActions = false
	})

	assert.NotContains(t, out, "[ ]")
	assert.NotContains(t, out, "selected")
	assert.NotContains(t, out, "ACTIONS")
}

func TestRenderLoading(t *testing.T) {
	s := newUserTable(users.Seed())
	out := render(s, func(v *TableView) {
		v.Loading = true
		v.LoadingRows = 3
	})

	assert.NotContains(t, out, "John Doe")
	assert.Equal(t, 4, len(strings.Split(out, "\n")), "header plus skeleton rows")
}

func TestRenderEmpty(t *testing.T) {
	out := render(newUserTable(nil), nil)

	assert.Contains(t, out, "No data found")
	assert.Contains(t, out, "There are no records to display at the moment.")
	assert.Contains(t, out, "Add New Record")
}

func TestAvatarColorFollowsFullNameWhenTruncated(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	long := "Maximiliana Alexandrovna Petrovic" // 33 runes, cut to 28 on screen
	require.Equal(t, 33, utf8.RuneCountInString(long))

	out := render(newUserTable([]domain.User{{ID: "1", Name: long, Status: domain.StatusActive}}), nil)

	assert.Contains(t, out, "48;5;"+string(AvatarColor(long)))
	assert.NotContains(t, out, "48;5;"+string(AvatarColor(truncate(long, maxColWidth))))
}
