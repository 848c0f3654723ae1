package ui

import (
	"github.com/atomicstack/listctx/internal/backend"
	"github.com/atomicstack/listctx/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func waitForBackendEvent(t *backend.Ticker) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-t.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evt := msg.(backendEventMsg).event
	res := m.dispatcher.Handle(evt)
	if evt.Kind == backend.KindTick {
		events.Tick.Rotate(evt.Seq, res.NotificationsRotated)
	}
	return waitForBackendEvent(m.ticker)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.ticker = nil
	return nil
}
