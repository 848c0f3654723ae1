package ui

import (
	"reflect"

	"github.com/atomicstack/listctx/internal/backend"
	"github.com/atomicstack/listctx/internal/data/dispatcher"
	"github.com/atomicstack/listctx/internal/input"
	"github.com/atomicstack/listctx/internal/logging/events"
	"github.com/atomicstack/listctx/internal/state"
	"github.com/atomicstack/listctx/internal/theme"
	uistate "github.com/atomicstack/listctx/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the list and notification view.
type Model struct {
	context       input.Context
	list          *uistate.List[state.Entry]
	notifications state.NotificationStore
	dispatcher    *dispatcher.Dispatcher
	ticker        *backend.Ticker
	help          help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	err error

	handlers map[reflect.Type]msgHandler
}

// NewModel seeds the list and notification queue and starts in the Default
// context with nothing selected. A non-empty focus query preselects the exit
// point. ticker may be nil.
func NewModel(width, height int, showFooter bool, focus string, ticker *backend.Ticker) *Model {
	notifications := state.NewNotificationStore()
	notifications.SetEntries(state.SeedNotifications())
	m := &Model{
		context:       input.ContextDefault,
		list:          uistate.NewList(state.SeedEntries(), state.NewEntry),
		notifications: notifications,
		dispatcher:    dispatcher.New(notifications),
		ticker:        ticker,
		help:          help.New(),
		showFooter:    showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if focus != "" {
		events.List.Focus(focus, m.list.Focus(focus))
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return waitForBackendEvent(m.ticker)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Err returns the fatal error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}

// Context reports the active input context.
func (m *Model) Context() input.Context {
	return m.context
}

// Cursor reports the list cursor.
func (m *Model) Cursor() (int, bool) {
	return m.list.Selected()
}

// Entries returns a copy of the list entries.
func (m *Model) Entries() []state.Entry {
	return m.list.Entries()
}

// Notifications returns the notification queue in display order.
func (m *Model) Notifications() []state.Notification {
	return m.notifications.Entries()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(ActionMsg{}):         m.handleActionMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
