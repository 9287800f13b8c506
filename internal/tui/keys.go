package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Paint      key.Binding
	Erase      key.Binding
	MoveStart  key.Binding
	MoveFinish key.Binding
	Algorithm  key.Binding
	NodeType   key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Skip       key.Binding
	Reset      key.Binding
	ClearGrid  key.Binding
	NoWalls    key.Binding
	Maze       key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Paint: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "paint"),
	),
	Erase: key.NewBinding(
		key.WithKeys("d", "backspace"),
		key.WithHelp("d", "erase"),
	),
	MoveStart: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "move start"),
	),
	MoveFinish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "move finish"),
	),
	Algorithm: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "algorithm"),
	),
	NodeType: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "paint type"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "visualize"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "skip"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset"),
	),
	ClearGrid: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear grid"),
	),
	NoWalls: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "remove walls"),
	),
	Maze: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate maze"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "slower"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Algorithm, k.Paint, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Erase, k.NodeType, k.MoveStart, k.MoveFinish},
		{k.Algorithm, k.Start, k.Pause, k.Restart, k.Skip},
		{k.Reset, k.ClearGrid, k.NoWalls, k.Maze},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}
