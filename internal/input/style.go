package input

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
)

// Variant is the visual treatment of the field box
type Variant int

const (
	VariantOutlined Variant = iota // default
	VariantFilled
	VariantGhost
)

func (v Variant) String() string {
	switch v {
	case VariantFilled:
		return "filled"
	case VariantGhost:
		return "ghost"
	default:
		return "outlined"
	}
}

// ParseVariant maps a config value onto a Variant. Empty means outlined.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outlined":
		return VariantOutlined, nil
	case "filled":
		return VariantFilled, nil
	case "ghost":
		return VariantGhost, nil
	}
	return VariantOutlined, fmt.Errorf("unknown input variant %q", s)
}

// Size controls padding and width of the field box
type Size int

const (
	SizeMd Size = iota // default
	SizeSm
	SizeLg
)

func (s Size) String() string {
	switch s {
	case SizeSm:
		return "sm"
	case SizeLg:
		return "lg"
	default:
		return "md"
	}
}

// ParseSize maps a config value onto a Size. Empty means md.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md":
		return SizeMd, nil
	case "sm":
		return SizeSm, nil
	case "lg":
		return SizeLg, nil
	}
	return SizeMd, fmt.Errorf("unknown input size %q", s)
}

// Width is the inner text width for the size
func (s Size) Width() int {
	switch s {
	case SizeSm:
		return 24
	case SizeLg:
		return 40
	default:
		return 32
	}
}

// StyleOptions is everything that influences the look of the field box
type StyleOptions struct {
	Variant  Variant
	Size     Size
	Invalid  bool
	Disabled bool
	Focused  bool
	Theme    domain.Theme
}

type palette struct {
	border, focus, invalid, disabled lipgloss.Color
	fill, fillInvalid, fillFocus      lipgloss.Color
	text, muted                       lipgloss.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeLight: {
		border: "250", focus: "63", invalid: "203", disabled: "253",
		fill: "254", fillInvalid: "224", fillFocus: "255",
		text: "235", muted: "248",
	},
	domain.ThemeDark: {
		border: "240", focus: "111", invalid: "203", disabled: "237",
		fill: "236", fillInvalid: "52", fillFocus: "235",
		text: "252", muted: "243",
	},
}

// ResolveStyle returns the box style for a field. Disabled wins over
// invalid, invalid wins over focus.
func ResolveStyle(o StyleOptions) lipgloss.Style {
	p := palettes[o.Theme]
	st := lipgloss.NewStyle().Foreground(p.text)

	switch o.Size {
	case SizeSm:
		st = st.Padding(0, 1)
	case SizeLg:
		st = st.Padding(1, 3)
	default:
		st = st.Padding(0, 2)
	}

	accent := p.border
	switch {
	case o.Disabled:
		accent = p.disabled
	case o.Invalid:
		accent = p.invalid
	case o.Focused:
		accent = p.focus
	}

	switch o.Variant {
	case VariantFilled:
		bg := p.fill
		switch {
		case o.Disabled:
			bg = p.disabled
		case o.Invalid:
			bg = p.fillInvalid
		case o.Focused:
			bg = p.fillFocus
		}
		st = st.Background(bg)
		if o.Focused || o.Invalid {
			st = st.Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent)
		}
	case VariantGhost:
		st = st.Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(accent).
			PaddingLeft(0)
	default:
		border := lipgloss.RoundedBorder()
		if o.Size == SizeSm {
			border = lipgloss.NormalBorder()
		}
		st = st.Border(border).BorderForeground(accent)
	}

	if o.Disabled {
		st = st.Foreground(p.muted)
	}
	return st
}
