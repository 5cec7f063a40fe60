package views

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Theme domain.Theme

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Panel       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Header      lipgloss.Style
	HeaderFocus lipgloss.Style
	SortActive  lipgloss.Style
	SortIdle    lipgloss.Style
	Cell        lipgloss.Style
	Cursor      lipgloss.Style
	SelectionBg lipgloss.Style
	Link        lipgloss.Style
	Danger      lipgloss.Style
	Skeleton    lipgloss.Style
	Avatar      lipgloss.Style
	Badge       lipgloss.Style
	Error       lipgloss.Style

	StatusActive   lipgloss.Style
	StatusPending  lipgloss.Style
	StatusInactive lipgloss.Style
	StatusUnknown  lipgloss.Style
}

type themeColors struct {
	fg, muted, primary, border, headerBg, selectionBg, skeleton lipgloss.Color
}

var themes = map[domain.Theme]themeColors{
	domain.ThemeLight: {
		fg: "235", muted: "244", primary: "63", border: "250",
		headerBg: "255", selectionBg: "153", skeleton: "252",
	},
	domain.ThemeDark: {
		fg: "252", muted: "243", primary: "111", border: "240",
		headerBg: "236", selectionBg: "24", skeleton: "238",
	},
}

// NewStyles creates the style set for theme
func NewStyles(theme domain.Theme) *Styles {
	c := themes[theme]
	return &Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.primary),
		Subtitle: lipgloss.NewStyle().Foreground(c.muted).Italic(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(c.muted).
			MarginTop(1),
		Help: lipgloss.NewStyle().Foreground(c.muted),
		Main: lipgloss.NewStyle().Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.border).
			Padding(0, 1),
		Tab:         lipgloss.NewStyle().Foreground(c.muted).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(c.primary).Bold(true).Underline(true).Padding(0, 1),
		Header:      lipgloss.NewStyle().Foreground(c.muted).Background(c.headerBg).Bold(true),
		HeaderFocus: lipgloss.NewStyle().Foreground(c.primary).Background(c.headerBg).Bold(true).Underline(true),
		SortActive:  lipgloss.NewStyle().Foreground(c.primary).Background(c.headerBg),
		SortIdle:    lipgloss.NewStyle().Foreground(c.border).Background(c.headerBg),
		Cell:        lipgloss.NewStyle().Foreground(c.fg),
		Cursor:      lipgloss.NewStyle().Foreground(c.primary).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(c.selectionBg),
		Link:        lipgloss.NewStyle().Foreground(c.primary),
		Danger:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Skeleton:    lipgloss.NewStyle().Foreground(c.skeleton),
		Avatar:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		Badge:       lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("157")),
		StatusPending:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(lipgloss.Color("229")),
		StatusInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("88")).Background(lipgloss.Color("224")),
		StatusUnknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("253")),
	}
}

// StatusBadgeStyle returns the badge style for a user status
func (s *Styles) StatusBadgeStyle(status domain.UserStatus) lipgloss.Style {
	var st lipgloss.Style
	switch status {
	case domain.StatusActive:
		st = s.StatusActive
	case domain.StatusPending:
		st = s.StatusPending
	case domain.StatusInactive:
		st = s.StatusInactive
	default:
		st = s.StatusUnknown
	}
	return s.Badge.Inherit(st)
}

var avatarColors = []lipgloss.Color{
	"63",  // primary
	"135", // purple
	"35",  // green
	"167", // red
	"61",  // indigo
	"205", // pink
	"178", // yellow
	"33",  // blue
}

// AvatarColor picks the avatar background from the length of name
func AvatarColor(name string) lipgloss.Color {
	return avatarColors[utf8.RuneCountInString(name)%len(avatarColors)]
}
