package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Placeholder values used by the insert binding until entries can be edited.
const (
	PlaceholderTitle       = "title"
	PlaceholderDescription = "desc"
)

// DefaultKeyMap holds the bindings active in ContextDefault.
type DefaultKeyMap struct {
	Quit      key.Binding
	EnterList key.Binding
	ExitPoint key.Binding
	Up        key.Binding
	Down      key.Binding
}

// ListKeyMap holds the bindings active in ContextList.
type ListKeyMap struct {
	Quit      key.Binding
	LeaveList key.Binding
	Up        key.Binding
	Down      key.Binding
	Insert    key.Binding
}

var (
	defaultKeys = DefaultKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		EnterList: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "focus list"),
		),
		ExitPoint: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "restore selection"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "peek up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "peek down"),
		),
	}

	listKeys = ListKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "quit"),
		),
		LeaveList: key.NewBinding(
			key.WithKeys("q", "right", "esc"),
			key.WithHelp("q/→/esc", "leave list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Insert: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "new entry"),
		),
	}
)

// DefaultKeys returns the bindings for ContextDefault.
func DefaultKeys() DefaultKeyMap { return defaultKeys }

// ListKeys returns the bindings for ContextList.
func ListKeys() ListKeyMap { return listKeys }

func (k DefaultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ExitPoint, k.EnterList, k.Quit}
}

func (k DefaultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.ExitPoint}, {k.EnterList, k.Quit}}
}

func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Insert, k.LeaveList, k.Quit}
}

func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Insert, k.LeaveList, k.Quit}}
}

// KeyMapFor returns the help key map for the given context, or nil for an
// unknown context.
func KeyMapFor(ctx Context) help.KeyMap {
	switch ctx {
	case ContextDefault:
		return defaultKeys
	case ContextList:
		return listKeys
	default:
		return nil
	}
}
