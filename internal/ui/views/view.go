package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storyfreak/internal/domain"
)

// ViewState contains everything the frame around a component needs
type ViewState struct {
	Width         int
	Height        int
	Tabs          []string
	ActiveTab     int
	Body          string
	Loading       bool
	SortLabel     string
	StatusMessage string
	HelpView      string
}

// Renderer draws the showcase frame: title, tabs, component panel,
// status and help.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderTabs(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Panel.Render(state.Body))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	helpText := state.HelpView
	if helpText == "" {
		helpText = "Press ? for help"
	}
	helpText = r.styles.Help.Render(helpText)

	// Push help to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if state.Height <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with right-aligned indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Title.Render("storyfreak"),
		"  ",
		r.styles.Subtitle.Render("terminal component showcase"),
	)

	indicators := []string{ThemeLabel(r.styles.Theme)}
	if state.Loading {
		indicators = append(indicators, "⠿ Loading")
	}
	if state.SortLabel != "" {
		indicators = append(indicators, fmt.Sprintf("[Sort: %s]", state.SortLabel))
	}
	right := r.styles.Dim.Render(strings.Join(indicators, " | "))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) renderTabs(state ViewState) string {
	tabs := make([]string, 0, len(state.Tabs))
	for i, name := range state.Tabs {
		st := r.styles.Tab
		if i == state.ActiveTab {
			st = r.styles.TabActive
		}
		tabs = append(tabs, st.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// ThemeLabel is the short indicator for the active theme
func ThemeLabel(theme domain.Theme) string {
	if theme == domain.ThemeDark {
		return "☾ dark"
	}
	return "☀ light"
}
