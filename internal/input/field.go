package input

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
)

// Type is the kind of value the field holds
type Type int

const (
	TypeText Type = iota
	TypePassword
)

// Icon is the affordance drawn at the right edge of the field
type Icon int

const (
	IconNone Icon = iota
	IconLoading
	IconShowPassword // value hidden, toggle reveals it
	IconHidePassword
	IconClear
)

// Config describes a field; it is the terminal counterpart of component props
type Config struct {
	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string
	Value        string

	Disabled bool
	Invalid  bool
	Loading  bool
	Variant  Variant
	Size     Size
	Type     Type

	ShowPasswordToggle bool
	ShowClearButton    bool

	OnChange func(value string)
	OnClear  func()
}

// Field is a labelled single-line text input with helper text, a loading
// spinner, an optional password toggle and clear button.
type Field struct {
	cfg          Config
	input        textinput.Model
	spinner      spinner.Model
	showPassword bool
}

// New creates an unfocused field from cfg
func New(cfg Config) *Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.Width = cfg.Size.Width()
	ti.SetValue(cfg.Value)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	f := &Field{cfg: cfg, input: ti, spinner: sp}
	f.syncEcho()
	return f
}

// Config returns the field configuration
func (f *Field) Config() Config {
	return f.cfg
}

// ID is the stable identifier used for persisted values
func (f *Field) ID() string {
	if f.cfg.Label == "" {
		return "input-field"
	}
	return "input-" + Slug(f.cfg.Label)
}

// Key is the field's storage key: the label slug, or "field"
func (f *Field) Key() string {
	if f.cfg.Label == "" {
		return "field"
	}
	return Slug(f.cfg.Label)
}

// Value returns the current text
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the text and notifies OnChange when it differs
func (f *Field) SetValue(v string) {
	if v == f.input.Value() {
		return
	}
	f.input.SetValue(v)
	f.changed()
}

// SetOnChange replaces the change callback
func (f *Field) SetOnChange(fn func(value string)) {
	f.cfg.OnChange = fn
}

// Focus gives the field keyboard focus. Disabled fields never take focus.
func (f *Field) Focus() tea.Cmd {
	if f.cfg.Disabled {
		return nil
	}
	return f.input.Focus()
}

func (f *Field) Blur() {
	f.input.Blur()
}

func (f *Field) Focused() bool {
	return f.input.Focused()
}

// SetLoading shows or hides the loading spinner. The returned command
// starts the spinner animation.
func (f *Field) SetLoading(loading bool) tea.Cmd {
	f.cfg.Loading = loading
	if loading {
		return f.spinner.Tick
	}
	return nil
}

func (f *Field) SetDisabled(disabled bool) {
	f.cfg.Disabled = disabled
	if disabled {
		f.input.Blur()
	}
}

// SetError marks the field invalid with msg; an empty msg clears it
func (f *Field) SetError(msg string) {
	f.cfg.ErrorMessage = msg
	f.cfg.Invalid = msg != ""
}

// TogglePassword flips between hidden and visible password text
func (f *Field) TogglePassword() {
	f.showPassword = !f.showPassword
	f.syncEcho()
}

// PasswordVisible reports whether a password field currently shows its text
func (f *Field) PasswordVisible() bool {
	return f.cfg.Type != TypePassword || f.showPassword
}

// Clear empties the field and calls OnClear
func (f *Field) Clear() {
	f.input.SetValue("")
	if f.cfg.OnClear != nil {
		f.cfg.OnClear()
	}
	f.changed()
}

// HasRightIcon reports whether any right-edge affordance is drawn
func (f *Field) HasRightIcon() bool {
	return f.cfg.Loading || f.cfg.ShowPasswordToggle || (f.cfg.ShowClearButton && f.Value() != "")
}

// RightIcon picks the right-edge affordance: the spinner first, then the
// password toggle, then the clear button.
func (f *Field) RightIcon() Icon {
	switch {
	case f.cfg.Loading:
		return IconLoading
	case f.cfg.ShowPasswordToggle && f.showPassword:
		return IconHidePassword
	case f.cfg.ShowPasswordToggle:
		return IconShowPassword
	case f.cfg.ShowClearButton && f.Value() != "":
		return IconClear
	}
	return IconNone
}

// HelperLine returns the text under the field and whether it is an error.
// The error message takes precedence over helper text.
func (f *Field) HelperLine() (string, bool) {
	text := f.cfg.HelperText
	if f.cfg.ErrorMessage != "" {
		text = f.cfg.ErrorMessage
	}
	if text == "" {
		return "", false
	}
	return text, f.cfg.Invalid || f.cfg.ErrorMessage != ""
}

// Update handles key and spinner messages. Disabled fields ignore keys.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.cfg.Loading {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if f.cfg.Disabled || !f.input.Focused() {
			return nil
		}
		before := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if f.input.Value() != before {
			f.changed()
		}
		return cmd
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label, the field box and the helper line
func (f *Field) View(theme domain.Theme) string {
	p := palettes[theme]
	var parts []string

	if f.cfg.Label != "" {
		label := lipgloss.NewStyle().Bold(true).Foreground(p.text)
		if f.cfg.Disabled {
			label = lipgloss.NewStyle().Foreground(p.muted)
		}
		parts = append(parts, label.Render(f.cfg.Label))
	}

	content := f.input.View()
	if icon := f.iconView(theme); icon != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Center, content, " ", icon)
	}
	box := ResolveStyle(StyleOptions{
		Variant:  f.cfg.Variant,
		Size:     f.cfg.Size,
		Invalid:  f.cfg.Invalid,
		Disabled: f.cfg.Disabled,
		Focused:  f.input.Focused(),
		Theme:    theme,
	})
	parts = append(parts, box.Render(content))

	if text, isErr := f.HelperLine(); text != "" {
		st := lipgloss.NewStyle().Foreground(p.muted)
		if isErr {
			st = lipgloss.NewStyle().Foreground(p.invalid)
		}
		parts = append(parts, st.Render(text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *Field) iconView(theme domain.Theme) string {
	p := palettes[theme]
	muted := lipgloss.NewStyle().Foreground(p.muted)
	switch f.RightIcon() {
	case IconLoading:
		return lipgloss.NewStyle().Foreground(p.focus).Render(f.spinner.View())
	case IconShowPassword:
		return muted.Render("◉")
	case IconHidePassword:
		return muted.Render("◎")
	case IconClear:
		return muted.Render("×")
	}
	return ""
}

func (f *Field) syncEcho() {
	if f.PasswordVisible() {
		f.input.EchoMode = textinput.EchoNormal
	} else {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
	}
}

func (f *Field) changed() {
	if f.cfg.OnChange != nil {
		f.cfg.OnChange(f.input.Value())
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lowercases label and joins whitespace runs with "-"
func Slug(label string) string {
	return whitespace.ReplaceAllString(strings.ToLower(label), "-")
}
