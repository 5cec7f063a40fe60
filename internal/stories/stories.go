// Package stories is the catalogue of documented component states, one
// story per interesting combination of props.
package stories

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
	"storyfreak/internal/input"
	"storyfreak/internal/table"
	"storyfreak/internal/ui/views"
	"storyfreak/internal/users"
)

// Component names
const (
	InputField = "InputField"
	DataTable  = "DataTable"
)

// ErrUnknownStory is returned by Find for an id that is not registered
var ErrUnknownStory = errors.New("unknown story")

// Story is one documented component state
type Story struct {
	ID          string
	Component   string
	Name        string
	Description string
	Render      func(theme domain.Theme) string
}

func field(cfg input.Config) func(domain.Theme) string {
	return func(theme domain.Theme) string {
		return input.New(cfg).View(theme)
	}
}

func sizes(theme domain.Theme) string {
	var parts []string
	for _, s := range []input.Size{input.SizeSm, input.SizeMd, input.SizeLg} {
		parts = append(parts, input.New(input.Config{
			Label:       strings.ToUpper(s.String()) + " Input",
			Placeholder: s.String() + " size",
			Size:        s,
		}).View(theme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func loadingField(theme domain.Theme) string {
	f := input.New(input.Config{Label: "Loading Input", Placeholder: "Loading..."})
	f.SetLoading(true)
	return f.View(theme)
}

type tableStory struct {
	data       []domain.User
	selectable bool
	actions    bool
	loading    bool
	prepare    func(*table.State)
}

func (ts tableStory) render(theme domain.Theme) string {
	s := table.NewState(users.Columns(), users.Rows(ts.data))
	if ts.prepare != nil {
		ts.prepare(s)
	}
	return views.NewTableRenderer(views.NewStyles(theme)).Render(views.TableView{
		State:       s,
		Cursor:      -1,
		FocusColumn: -1,
		Selectable:  ts.selectable,
		ShowActions: ts.actions,
		Loading:     ts.loading,
		LoadingRows: 5,
	})
}

func sample() []domain.User {
	return users.Seed()[:4]
}

var registry = []Story{
	{
		ID: "inputfield--default", Component: InputField, Name: "Default",
		Description: "Outlined, medium input with helper text.",
		Render: field(input.Config{Label: "Default Input", Placeholder: "Enter some text...", HelperText: "This is helper text"}),
	},
	{
		ID: "inputfield--filled", Component: InputField, Name: "Filled",
		Description: "Filled background variant.",
		Render: field(input.Config{Label: "Filled Input", Placeholder: "Filled variant", HelperText: "This input has a filled background", Variant: input.VariantFilled}),
	},
	{
		ID: "inputfield--outlined", Component: InputField, Name: "Outlined",
		Description: "Bordered variant, the default.",
		Render: field(input.Config{Label: "Outlined Input", Placeholder: "Outlined variant", HelperText: "This input has an outlined border"}),
	},
	{
		ID: "inputfield--ghost", Component: InputField, Name: "Ghost",
		Description: "Minimal underline variant.",
		Render: field(input.Config{Label: "Ghost Input", Placeholder: "Ghost variant", HelperText: "This input has a minimal ghost style", Variant: input.VariantGhost}),
	},
	{
		ID: "inputfield--sizes", Component: InputField, Name: "Sizes",
		Description: "Small, medium and large fields.",
		Render: sizes,
	},
	{
		ID: "inputfield--with-error", Component: InputField, Name: "With Error",
		Description: "Invalid state; the error message replaces helper text.",
		Render: field(input.Config{Label: "Email", Value: "invalid@", Invalid: true, ErrorMessage: "Please enter a valid email address"}),
	},
	{
		ID: "inputfield--disabled", Component: InputField, Name: "Disabled",
		Description: "Read-only field that ignores input.",
		Render: field(input.Config{Label: "Disabled Input", Placeholder: "This input is disabled", Disabled: true, HelperText: "This input cannot be edited"}),
	},
	{
		ID: "inputfield--loading", Component: InputField, Name: "Loading",
		Description: "Spinner in place of the right-hand icon.",
		Render: loadingField,
	},
	{
		ID: "inputfield--password", Component: InputField, Name: "With Password Toggle",
		Description: "Hidden text with a reveal toggle (ctrl+p).",
		Render: field(input.Config{Label: "Password", Placeholder: "Enter your password", Type: input.TypePassword, ShowPasswordToggle: true, Value: "mypassword123"}),
	},
	{
		ID: "inputfield--clear-button", Component: InputField, Name: "With Clear Button",
		Description: "Clear affordance shown while the field has a value (ctrl+x).",
		Render: field(input.Config{Label: "Search", Placeholder: "Type to search...", ShowClearButton: true, Value: "search query"}),
	},
	{
		ID: "datatable--default", Component: DataTable, Name: "Default",
		Description: "Read-only table with sortable columns.",
		Render: tableStory{data: sample()}.render,
	},
	{
		ID: "datatable--with-selection", Component: DataTable, Name: "With Selection",
		Description: "Checkbox column, selection summary and select-all control.",
		Render: tableStory{data: sample(), selectable: true}.render,
	},
	{
		ID: "datatable--sorted", Component: DataTable, Name: "Sorted",
		Description: "Name column sorted descending.",
		Render: tableStory{data: sample(), prepare: func(s *table.State) {
			s.ApplySort("name")
			s.ApplySort("name")
		}}.render,
	},
	{
		ID: "datatable--partial-selection", Component: DataTable, Name: "Partial Selection",
		Description: "Indeterminate select-all box with one row checked.",
		Render: tableStory{data: sample(), selectable: true, actions: true, prepare: func(s *table.State) {
			s.ToggleRowSelection(s.View()[1], true)
		}}.render,
	},
	{
		ID: "datatable--loading", Component: DataTable, Name: "Loading",
		Description: "Skeleton rows while data loads.",
		Render: tableStory{data: sample(), selectable: true, loading: true}.render,
	},
	{
		ID: "datatable--empty", Component: DataTable, Name: "Empty",
		Description: "Placeholder shown for an empty data set.",
		Render: tableStory{}.render,
	},
	{
		ID: "datatable--with-actions", Component: DataTable, Name: "With Actions",
		Description: "Selectable rows with edit and delete actions.",
		Render: tableStory{data: sample(), selectable: true, actions: true}.render,
	},
}

// All returns every story in catalogue order
func All() []Story {
	out := make([]Story, len(registry))
	copy(out, registry)
	return out
}

// ByComponent groups stories by component name
func ByComponent() map[string][]Story {
	out := make(map[string][]Story)
	for _, s := range registry {
		out[s.Component] = append(out[s.Component], s)
	}
	return out
}

// Components returns the sorted component names
func Components() []string {
	var names []string
	for name := range ByComponent() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Find returns the story with id
func Find(id string) (Story, error) {
	for _, s := range registry {
		if s.ID == id {
			return s, nil
		}
	}
	return Story{}, fmt.Errorf("%w: %s", ErrUnknownStory, id)
}

// Catalogue renders every story under its component heading
func Catalogue(theme domain.Theme) string {
	styles := views.NewStyles(theme)
	groups := ByComponent()

	var b strings.Builder
	b.WriteString(styles.Title.Render("storyfreak components"))
	b.WriteString("\n\n")
	for _, component := range Components() {
		b.WriteString(styles.Title.Render("Components/" + component))
		b.WriteString("\n\n")
		for _, s := range groups[component] {
			b.WriteString(Show(s, theme))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// Show renders a single story with its heading and description
func Show(s Story, theme domain.Theme) string {
	styles := views.NewStyles(theme)
	heading := styles.Cursor.Render(s.Name) + "  " + styles.Dim.Render(s.ID)
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		styles.Subtitle.Render(s.Description),
		"",
		s.Render(theme),
	)
}
