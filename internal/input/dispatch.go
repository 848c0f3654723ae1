package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Dispatch classifies a key press within ctx. It returns nil when the key has
// no meaning in that context. Dispatch has no side effects; callers apply the
// returned Action themselves.
func Dispatch(ctx Context, msg tea.KeyMsg) Action {
	switch ctx {
	case ContextDefault:
		return dispatchDefault(msg)
	case ContextList:
		return dispatchList(msg)
	default:
		return nil
	}
}

func dispatchDefault(msg tea.KeyMsg) Action {
	keys := defaultKeys
	switch {
	case key.Matches(msg, keys.Quit):
		return Quit{}
	case key.Matches(msg, keys.EnterList):
		return ChangeContext{Target: ContextList}
	case key.Matches(msg, keys.ExitPoint):
		return ListOp{Op: Navigate{Direction: DirectionExitPoint}}
	case key.Matches(msg, keys.Up):
		return ListOp{Op: Navigate{Direction: DirectionUp}}
	case key.Matches(msg, keys.Down):
		return ListOp{Op: Navigate{Direction: DirectionDown}}
	}
	return nil
}

func dispatchList(msg tea.KeyMsg) Action {
	keys := listKeys
	switch {
	case key.Matches(msg, keys.Quit):
		return Quit{}
	case key.Matches(msg, keys.LeaveList):
		return ChangeContext{Target: ContextDefault}
	case key.Matches(msg, keys.Up):
		return ListOp{Op: Navigate{Direction: DirectionUp}}
	case key.Matches(msg, keys.Down):
		return ListOp{Op: Navigate{Direction: DirectionDown}}
	case key.Matches(msg, keys.Insert):
		return ListOp{Op: Insert{Title: PlaceholderTitle, Description: PlaceholderDescription}}
	}
	return nil
}
