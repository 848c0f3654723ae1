package backend

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when a ticker is created with a non-positive interval.
const DefaultInterval = 250 * time.Millisecond

// Kind represents the type of event emitted by the ticker.
type Kind int

const (
	KindTick Kind = iota
)

// Event conveys one periodic wakeup.
type Event struct {
	Kind Kind
	At   time.Time
	Seq  uint64
}

// Ticker emits tick events at a fixed interval until stopped. It never
// touches application state; consumers apply each event themselves.
type Ticker struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewTicker starts a ticker that fires every interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &Ticker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}

	t.wg.Add(1)
	go t.run()

	go func() {
		t.wg.Wait()
		close(t.events)
		close(t.done)
	}()

	return t
}

// Interval reports the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Events returns the channel of tick events. It is closed after Stop.
func (t *Ticker) Events() <-chan Event {
	return t.events
}

// Stop cancels the ticker. Use Wait if a clean drain is required.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the ticker goroutine has exited and the events channel
// is closed.
func (t *Ticker) Wait() {
	<-t.done
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			select {
			case <-t.ctx.Done():
				return
			case t.events <- Event{Kind: KindTick, At: now, Seq: seq}:
			}
		}
	}
}
