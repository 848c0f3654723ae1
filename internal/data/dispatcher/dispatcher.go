package dispatcher

import (
	"github.com/atomicstack/listctx/internal/backend"
	"github.com/atomicstack/listctx/internal/state"
)

type Result struct {
	NotificationsRotated bool
}

// Dispatcher applies backend events to the stores they affect.
type Dispatcher struct {
	notifications state.NotificationStore
}

func New(n state.NotificationStore) *Dispatcher {
	return &Dispatcher{notifications: n}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindTick:
		if d.notifications != nil {
			res.NotificationsRotated = d.notifications.Rotate()
		}
	}
	return res
}
