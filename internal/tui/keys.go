package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	New      key.Binding
	Practice key.Binding
	Delete   key.Binding
	Confirm  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding

	NextField key.Binding
	Save      key.Binding
	Back      key.Binding

	Random  key.Binding
	Shorter key.Binding
	Longer  key.Binding
	Start   key.Binding

	Pause key.Binding
	Stop  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		Practice: key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "practice")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),

		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "create")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Random:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle random")),
		Shorter: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "shorter")),
		Longer:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "longer")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),

		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Stop:  key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s/esc", "stop")),
	}
}

// bindings adapts a slice of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) forScreen(s screen) bindings {
	switch s {
	case screenCreate:
		return bindings{k.NextField, k.Save, k.Back}
	case screenSettings:
		return bindings{k.Random, k.Shorter, k.Longer, k.Start, k.Back}
	case screenPractice:
		return bindings{k.Pause, k.Stop}
	default:
		return bindings{k.Up, k.Down, k.New, k.Practice, k.Delete, k.Quit}
	}
}
