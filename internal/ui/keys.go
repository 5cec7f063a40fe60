package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Sort       key.Binding
	Select     key.Binding
	SelectAll  key.Binding
	Delete     key.Binding
	Reset      key.Binding
	Loading    key.Binding
	SwitchPane key.Binding
	Theme      key.Binding
	Password   key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:       key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort column")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete user")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset data")),
		Loading:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "toggle loading")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch component")),
		Theme:      key.NewBinding(key.WithKeys("t", "ctrl+t"), key.WithHelp("t", "toggle theme")),
		Password:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "show/hide password")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear field")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Sort, k.Select, k.SelectAll, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sort, k.Select, k.SelectAll, k.Delete, k.Reset, k.Loading},
		{k.Password, k.Clear},
		{k.SwitchPane, k.Theme, k.Help, k.Quit},
	}
}
