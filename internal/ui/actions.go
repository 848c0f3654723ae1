package ui

import (
	"fmt"

	"github.com/atomicstack/listctx/internal/input"
	"github.com/atomicstack/listctx/internal/logging"
	"github.com/atomicstack/listctx/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	action := input.Dispatch(m.context, keyMsg)
	if action == nil {
		events.Input.Ignored(m.context.String(), keyMsg.String())
		return nil
	}
	events.Input.Action(m.context.String(), keyMsg.String(), action.String())
	return m.perform(action)
}

// perform applies action and turns a failure into a fatal quit.
func (m *Model) perform(action input.Action) tea.Cmd {
	cmd, err := m.apply(action)
	if err != nil {
		return m.fail(err)
	}
	return cmd
}

// ActionMsg applies an action directly, bypassing key dispatch.
type ActionMsg struct {
	Action input.Action
}

func (m *Model) handleActionMsg(msg tea.Msg) tea.Cmd {
	action := msg.(ActionMsg).Action
	if action == nil {
		return nil
	}
	events.Input.Action(m.context.String(), "", action.String())
	return m.perform(action)
}

// apply mutates the model for one dispatched action.
func (m *Model) apply(action input.Action) (tea.Cmd, error) {
	switch a := action.(type) {
	case input.Quit:
		return tea.Quit, nil
	case input.ChangeContext:
		return nil, m.changeContext(a.Target)
	case input.ListOp:
		return nil, m.applyListOp(a.Op)
	default:
		return nil, fmt.Errorf("unsupported action %T", action)
	}
}

func (m *Model) changeContext(target input.Context) error {
	from := m.context
	if err := input.Transition(from, target); err != nil {
		return err
	}
	m.context = target
	switch target {
	case input.ContextDefault:
		m.list.Deselect()
	case input.ContextList:
		m.list.Reselect()
		m.syncViewport()
	}
	events.Context.Change(from.String(), target.String())
	return nil
}

func (m *Model) applyListOp(op input.ListOperation) error {
	switch o := op.(type) {
	case input.Navigate:
		m.navigate(o.Direction)
		return nil
	case input.Insert:
		entry, ok := m.list.Insert(o.Title, o.Description)
		if !ok {
			return fmt.Errorf("insert %q: list has no entry builder", o.Title)
		}
		events.List.Insert(entry.ID, entry.Title, m.list.Len())
		return nil
	default:
		return fmt.Errorf("unsupported list operation %T", op)
	}
}

// navigate moves the cursor. Outside the list context Up and Down first
// restore the exit point, so every press steps from where the list was left.
func (m *Model) navigate(dir input.Direction) {
	peek := m.context == input.ContextDefault
	switch dir {
	case input.DirectionUp:
		if peek {
			m.list.ReselectThenPrev()
		} else {
			m.list.Prev()
		}
	case input.DirectionDown:
		if peek {
			m.list.ReselectThenNext()
		} else {
			m.list.Next()
		}
	case input.DirectionExitPoint:
		m.list.Reselect()
	}
	m.syncViewport()
	cursor, ok := m.list.Selected()
	if !ok {
		cursor = -1
	}
	events.List.Cursor(dir.String(), cursor)
}

// fail records a fatal error and stops the program.
func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	logging.Error(err)
	events.Context.Violation(err)
	return tea.Quit
}
