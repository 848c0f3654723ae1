package events

import "github.com/atomicstack/listctx/internal/logging"

type InputTracer struct{}

type ContextTracer struct{}

type ListTracer struct{}

type TickTracer struct{}

var (
	Input   = InputTracer{}
	Context = ContextTracer{}
	List    = ListTracer{}
	Tick    = TickTracer{}
)

func (InputTracer) Action(context, key, action string) {
	logging.Trace("input.action", map[string]interface{}{
		"context": context,
		"key":     key,
		"action":  action,
	})
}

func (InputTracer) Ignored(context, key string) {
	logging.Trace("input.ignored", map[string]interface{}{"context": context, "key": key})
}

func (ContextTracer) Change(from, to string) {
	logging.Trace("context.change", map[string]interface{}{"from": from, "to": to})
}

func (ContextTracer) Violation(err error) {
	if err == nil {
		return
	}
	logging.Trace("context.violation", map[string]interface{}{"error": err.Error()})
}

// Cursor records the cursor after a navigation; cursor is -1 when nothing is
// selected.
func (ListTracer) Cursor(direction string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"direction": direction, "cursor": cursor})
}

func (ListTracer) Insert(id, title string, length int) {
	logging.Trace("list.insert", map[string]interface{}{"id": id, "title": title, "len": length})
}

func (ListTracer) Focus(query string, matched bool) {
	logging.Trace("list.focus", map[string]interface{}{"query": query, "matched": matched})
}

func (TickTracer) Rotate(seq uint64, rotated bool) {
	logging.Trace("tick.rotate", map[string]interface{}{"seq": seq, "rotated": rotated})
}
