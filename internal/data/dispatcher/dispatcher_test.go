package dispatcher

import (
	"testing"

	"github.com/atomicstack/listctx/internal/backend"
	"github.com/atomicstack/listctx/internal/state"
)

func TestHandleTickRotatesNotifications(t *testing.T) {
	store := state.NewNotificationStore()
	store.SetEntries(state.SeedNotifications())
	d := New(store)

	res := d.Handle(backend.Event{Kind: backend.KindTick})
	if !res.NotificationsRotated {
		t.Fatalf("expected tick to rotate notifications")
	}
	if head := store.Entries()[0].Message; head != "Event2" {
		t.Fatalf("expected Event2 at head, got %q", head)
	}
}

func TestHandleWithoutStore(t *testing.T) {
	d := New(nil)
	if res := d.Handle(backend.Event{Kind: backend.KindTick}); res.NotificationsRotated {
		t.Fatalf("expected no rotation without a store")
	}
}

func TestHandleUnknownKind(t *testing.T) {
	store := state.NewNotificationStore()
	store.SetEntries(state.SeedNotifications())
	d := New(store)
	if res := d.Handle(backend.Event{Kind: backend.Kind(99)}); res.NotificationsRotated {
		t.Fatalf("expected unknown event kinds to be ignored")
	}
	if head := store.Entries()[0].Message; head != "Event1" {
		t.Fatalf("expected queue untouched, got head %q", head)
	}
}
