package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"storyfreak/internal/config"
	"storyfreak/internal/domain"
	"storyfreak/internal/eventbus"
	"storyfreak/internal/input"
	"storyfreak/internal/table"
	"storyfreak/internal/ui/views"
	"storyfreak/internal/users"
)

const emailError = "Please enter a valid email address"

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	repo   *users.Repository
	log    *zap.Logger

	theme    domain.Theme
	styles   *views.Styles
	renderer *views.TableRenderer
	frame    *views.Renderer
	keys     keyMap
	help     help.Model
	pager    *PagerOps

	width  int
	height int
	pane   Pane

	// DataTable pane
	table    *table.State
	cursor   int
	focusCol int
	loading  bool

	// InputField pane
	fields     []*input.Field
	fieldFocus int
	values     map[string]string

	statusMessage string
}

// NewModel creates the showcase model. Users, theme and input values are
// read from repo.
func NewModel(cfg *config.Config, repo *users.Repository, bus eventbus.EventBus, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	m := &Model{
		bus:    bus,
		config: cfg,
		repo:   repo,
		log:    log.Named("ui"),
		keys:   newKeyMap(),
		help:   help.New(),
		values: repo.InputValues(),
	}
	m.setTheme(repo.Theme(cfg.UI.Theme))
	m.loadTable(repo.Users())
	m.fields = m.newFields()

	return m
}

// SetProgram sets the program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Table exposes the table state backing the DataTable pane
func (m *Model) Table() *table.State {
	return m.table
}

// Theme returns the active theme
func (m *Model) Theme() domain.Theme {
	return m.theme
}

// Pane returns the component currently shown
func (m *Model) Pane() Pane {
	return m.pane
}

// Cursor returns the highlighted row index in the derived view
func (m *Model) Cursor() int {
	return m.cursor
}

// StatusMessage returns the last status line
func (m *Model) StatusMessage() string {
	return m.statusMessage
}

// Fields returns the showcase input fields
func (m *Model) Fields() []*input.Field {
	return m.fields
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.Error("pager failed", zap.Error(msg.err))
			m.statusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFields(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchPane):
		return m, m.switchPane()
	}

	if m.pane == PaneInput {
		return m, m.handleInputKey(msg)
	}
	return m, m.handleTableKey(msg)
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	cols := m.table.Columns()
	rows := m.table.View()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.showHelp()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		if m.focusCol > 0 {
			m.focusCol--
		}
	case key.Matches(msg, m.keys.Right):
		if m.focusCol < len(cols)-1 {
			m.focusCol++
		}
	case key.Matches(msg, m.keys.Sort):
		if m.focusCol < len(cols) {
			m.applySort(cols[m.focusCol])
		}
	case key.Matches(msg, m.keys.Select):
		if !m.config.UI.Selectable || m.cursor >= len(rows) {
			return nil
		}
		row := rows[m.cursor]
		m.table.ToggleRowSelection(row, !m.table.IsSelected(row))
	case key.Matches(msg, m.keys.SelectAll):
		if m.config.UI.Selectable {
			m.table.ToggleSelectAll(!m.table.AllSelected())
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(rows) {
			m.deleteRow(rows[m.cursor])
		}
	case key.Matches(msg, m.keys.Reset):
		m.resetData()
	case key.Matches(msg, m.keys.Loading):
		m.loading = !m.loading
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	f := m.fields[m.fieldFocus]

	switch {
	case msg.Type == tea.KeyEsc:
		return m.switchPane()
	case key.Matches(msg, m.keys.Up):
		if msg.Type != tea.KeyRunes {
			return m.focusField(m.fieldFocus - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if msg.Type != tea.KeyRunes {
			return m.focusField(m.fieldFocus + 1)
		}
	case key.Matches(msg, m.keys.Password):
		if f.Config().ShowPasswordToggle {
			f.TogglePassword()
		}
		return nil
	case key.Matches(msg, m.keys.Clear):
		if f.Config().ShowClearButton && f.Value() != "" {
			f.Clear()
		}
		return nil
	case msg.Type == tea.KeyCtrlT:
		m.toggleTheme()
		return nil
	}
	return f.Update(msg)
}

func (m *Model) updateFields(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.fields {
		cmds = append(cmds, f.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) switchPane() tea.Cmd {
	if m.pane == PaneTable {
		m.pane = PaneInput
		return m.focusField(m.fieldFocus)
	}
	m.pane = PaneTable
	for _, f := range m.fields {
		f.Blur()
	}
	return nil
}

// focusField moves focus to field i, stepping past disabled fields in the
// direction of travel. At least one field is always enabled.
func (m *Model) focusField(i int) tea.Cmd {
	n := len(m.fields)
	step := 1
	if i < m.fieldFocus {
		step = -1
	}
	i = ((i % n) + n) % n
	for m.fields[i].Config().Disabled {
		i = ((i+step)%n + n) % n
	}

	for _, f := range m.fields {
		f.Blur()
	}
	m.fieldFocus = i
	return m.fields[i].Focus()
}

func (m *Model) applySort(col table.Column) {
	if !m.table.ApplySort(col.Key) {
		m.statusMessage = fmt.Sprintf("%s is not sortable", col.Title)
		return
	}

	cfg := m.table.SortConfig()
	if cfg.Sorted() {
		m.statusMessage = fmt.Sprintf("Sorted by %s (%s)", col.Title, cfg.Direction)
	} else {
		m.statusMessage = "Sort cleared"
	}
	m.log.Debug("sort applied", zap.String("column", cfg.Key), zap.Stringer("direction", cfg.Direction))
	m.publish(domain.SortChangedEvent{Key: cfg.Key, Direction: cfg.Direction.String()})
}

func (m *Model) onSelectionChange(selected []*table.Row) {
	m.statusMessage = views.SelectionSummary(m.table)
	m.publish(domain.SelectionChangedEvent{
		IDs:   users.IDs(selected),
		Total: len(m.table.Rows()),
	})
}

// loadTable builds a fresh table state, as if the table was remounted
func (m *Model) loadTable(list []domain.User) {
	m.table = table.NewState(users.Columns(), users.Rows(list),
		table.WithSelectionObserver(func(sel []*table.Row) { m.onSelectionChange(sel) }))
	m.cursor = 0
	if m.focusCol >= len(m.table.Columns()) {
		m.focusCol = 0
	}
}

// deleteRow removes the user behind row. Remaining rows keep their
// identity so the selection survives.
func (m *Model) deleteRow(row *table.Row) {
	id := row.String("id")
	removed, err := m.repo.Delete(id)
	if err != nil {
		m.log.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		m.statusMessage = fmt.Sprintf("Delete failed: %v", err)
		return
	}
	if !removed {
		return
	}

	if m.table.IsSelected(row) {
		m.table.ToggleRowSelection(row, false)
	}
	kept := make([]*table.Row, 0, len(m.table.Rows()))
	for _, r := range m.table.Rows() {
		if r != row {
			kept = append(kept, r)
		}
	}
	m.table.SetRows(kept)
	if m.cursor >= len(kept) && m.cursor > 0 {
		m.cursor = len(kept) - 1
	}
	m.statusMessage = fmt.Sprintf("Deleted %s", row.String("name"))
}

func (m *Model) resetData() {
	for _, f := range m.fields {
		if f.Value() != "" {
			f.Clear()
		}
	}
	if err := m.repo.ClearAll(); err != nil {
		m.log.Error("failed to clear storage", zap.Error(err))
		m.statusMessage = fmt.Sprintf("Reset failed: %v", err)
		return
	}
	m.values = make(map[string]string)
	m.loadTable(m.repo.Users())
	if err := m.repo.SaveTheme(m.theme); err != nil {
		m.log.Warn("failed to keep theme after reset", zap.Error(err))
	}
	m.statusMessage = "Data reset to defaults"
}

func (m *Model) toggleTheme() {
	m.setTheme(m.theme.Toggle())
	if err := m.repo.SaveTheme(m.theme); err != nil {
		m.log.Error("failed to save theme", zap.Error(err))
	}
	m.statusMessage = fmt.Sprintf("Switched to %s mode", m.theme)
}

func (m *Model) setTheme(theme domain.Theme) {
	m.theme = theme
	m.styles = views.NewStyles(theme)
	m.renderer = views.NewTableRenderer(m.styles)
	m.frame = views.NewRenderer(m.styles)
}

func (m *Model) showHelp() tea.Cmd {
	if m.pager == nil {
		m.statusMessage = "Help pager unavailable"
		return nil
	}
	return m.pager.showInPager(renderHelpContent(m.styles, m.keys))
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ErrorEvent:
		m.statusMessage = "Error: " + ev.Message
	case eventbus.ConfigSavedEvent:
		m.statusMessage = "Configuration saved"
	}
}

func (m *Model) publish(e domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) newFields() []*input.Field {
	variant, err := input.ParseVariant(m.config.Input.Variant)
	if err != nil {
		m.log.Warn("invalid input variant in config", zap.Error(err))
	}
	size, err := input.ParseSize(m.config.Input.Size)
	if err != nil {
		m.log.Warn("invalid input size in config", zap.Error(err))
	}

	var email *input.Field
	fields := []*input.Field{
		input.New(input.Config{
			Label:           "Full Name",
			Placeholder:     "Jane Doe",
			HelperText:      "As it appears on your ID",
			Variant:         variant,
			Size:            size,
			ShowClearButton: true,
		}),
		input.New(input.Config{
			Label:       "Email Address",
			Placeholder: "you@example.com",
			HelperText:  "We'll never share your email",
			Variant:     variant,
			Size:        size,
			OnChange: func(v string) {
				if v != "" && !strings.Contains(v, "@") {
					email.SetError(emailError)
				} else {
					email.SetError("")
				}
			},
		}),
		input.New(input.Config{
			Label:              "Password",
			Placeholder:        "Enter your password",
			Type:               input.TypePassword,
			Variant:            variant,
			Size:               size,
			ShowPasswordToggle: true,
		}),
		input.New(input.Config{
			Label:       "Disabled Input",
			Placeholder: "This input is disabled",
			HelperText:  "This input cannot be edited",
			Variant:     variant,
			Size:        size,
			Disabled:    true,
		}),
	}
	email = fields[1]

	for _, f := range fields {
		if f.Config().Type == input.TypePassword || f.Config().Disabled {
			continue
		}
		f.SetValue(m.values[f.Key()])
		m.persistOnChange(f)
	}
	return fields
}

// persistOnChange saves the field value under its slug after every edit
func (m *Model) persistOnChange(f *input.Field) {
	validate := f.Config().OnChange
	f.SetOnChange(func(v string) {
		if validate != nil {
			validate(v)
		}
		m.values[f.Key()] = v
		if err := m.repo.SaveInputValues(m.values); err != nil {
			m.log.Error("failed to save input values", zap.Error(err))
		}
	})
}

// View renders the showcase
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Loading:       m.loading,
		StatusMessage: m.statusMessage,
		HelpView:      m.help.View(m.keys),
	}
	for _, p := range []Pane{PaneTable, PaneInput} {
		if p == m.pane {
			state.ActiveTab = len(state.Tabs)
		}
		state.Tabs = append(state.Tabs, p.String())
	}

	if cfg := m.table.SortConfig(); cfg.Sorted() {
		if col, ok := m.table.Column(cfg.Key); ok {
			state.SortLabel = fmt.Sprintf("%s %s", col.Title, cfg.Direction)
		}
	}

	if m.pane == PaneInput {
		state.Body = m.viewInputs()
	} else {
		state.Body = m.renderer.Render(views.TableView{
			State:       m.table,
			Cursor:      m.cursor,
			FocusColumn: m.focusCol,
			Selectable:  m.config.UI.Selectable,
			ShowActions: m.config.UI.ShowActions,
			Loading:     m.loading,
			LoadingRows: m.config.UI.LoadingRows,
		})
	}

	return m.frame.Render(state)
}

func (m *Model) viewInputs() string {
	var out []string
	for i, f := range m.fields {
		view := f.View(m.theme)
		if i == m.fieldFocus && m.pane == PaneInput {
			view = lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Cursor.Render("› "), view)
		} else {
			view = lipgloss.JoinHorizontal(lipgloss.Top, "  ", view)
		}
		out = append(out, view, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
