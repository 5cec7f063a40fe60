package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"storyfreak/internal/ui/views"
)

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	err error
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelpContent renders the key reference shown in the pager
func renderHelpContent(styles *views.Styles, keys keyMap) string {
	sections := []helpSection{
		{"Navigation", []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.SwitchPane}},
		{"DataTable", []key.Binding{keys.Sort, keys.Select, keys.SelectAll, keys.Delete, keys.Reset, keys.Loading}},
		{"InputField", []key.Binding{keys.Up, keys.Down, keys.Password, keys.Clear}},
		{"Other", []key.Binding{keys.Theme, keys.Help, keys.Quit}},
	}

	keyStyle := styles.Link.Width(10)
	descStyle := styles.Cell

	var help strings.Builder
	help.WriteString(styles.Title.Render("storyfreak help"))
	help.WriteString("\n")
	for _, sec := range sections {
		help.WriteString("\n")
		help.WriteString(styles.Cursor.Render(sec.title))
		help.WriteString("\n")
		for _, b := range sec.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}
	help.WriteString("\n")
	help.WriteString(styles.Help.Italic(true).Render("  Sorting cycles ascending → descending → original order."))
	return help.String()
}

// RunPager shows content in the ov pager and blocks until it is closed
func RunPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with the TUI screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// PagerOps runs the pager on behalf of a running Bubble Tea program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// Show hands the terminal to ov for the duration of the pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return RunPager(content)
}

// showInPager returns a command that blocks on the pager
func (p *PagerOps) showInPager(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{err: p.Show(content)}
	}
}
