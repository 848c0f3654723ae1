package state

// noSelection marks an absent cursor or exit point.
const noSelection = -1

// Titled is implemented by list entries so the list can match them by title.
type Titled interface {
	EntryTitle() string
}

// Builder constructs a new entry from a title and description.
type Builder[T any] func(title, description string) T

// List owns an ordered collection of entries, an optional cursor, and the
// exit point remembered when the cursor was last cleared.
type List[T Titled] struct {
	items          []T
	cursor         int
	exitPoint      int
	viewportOffset int
	build          Builder[T]
}

// NewList constructs a deselected list seeded with items. build is used by
// Insert; a nil builder makes Insert a no-op.
func NewList[T Titled](items []T, build Builder[T]) *List[T] {
	l := &List[T]{
		cursor:    noSelection,
		exitPoint: noSelection,
		build:     build,
	}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Entries returns a copy of the entries in insertion order.
func (l *List[T]) Entries() []T {
	dup := make([]T, len(l.items))
	copy(dup, l.items)
	return dup
}

// Selected returns the cursor index and whether a selection exists.
func (l *List[T]) Selected() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return 0, false
	}
	return l.cursor, true
}

// HasSelection reports whether the cursor points at an entry.
func (l *List[T]) HasSelection() bool {
	_, ok := l.Selected()
	return ok
}

// ExitPoint returns the remembered exit point, if any. The value is not
// clamped; Reselect clamps it when consumed.
func (l *List[T]) ExitPoint() (int, bool) {
	if l.exitPoint < 0 {
		return 0, false
	}
	return l.exitPoint, true
}

// Current returns the selected entry.
func (l *List[T]) Current() (T, bool) {
	idx, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[idx], true
}

// Next selects the following entry, wrapping to the first. With no
// selection it selects the first entry. Reports whether the cursor changed.
func (l *List[T]) Next() bool {
	n := len(l.items)
	if n == 0 {
		l.cursor = noSelection
		return false
	}
	old := l.cursor
	if l.cursor < 0 {
		l.cursor = 0
	} else {
		l.cursor = (l.cursor + 1) % n
	}
	return old != l.cursor
}

// Prev selects the preceding entry, wrapping to the last. With no selection
// it selects the first entry. Reports whether the cursor changed.
func (l *List[T]) Prev() bool {
	n := len(l.items)
	if n == 0 {
		l.cursor = noSelection
		return false
	}
	old := l.cursor
	switch {
	case l.cursor < 0:
		l.cursor = 0
	case l.cursor == 0:
		l.cursor = n - 1
	default:
		l.cursor--
	}
	return old != l.cursor
}

// Deselect clears the cursor and remembers it as the exit point. Calling it
// again while deselected keeps the earlier exit point.
func (l *List[T]) Deselect() {
	if l.cursor < 0 {
		return
	}
	l.exitPoint = l.cursor
	l.cursor = noSelection
}

// Reselect restores the cursor to the exit point, falling back to the first
// entry when the exit point is missing or no longer in range. An empty list
// stays deselected.
func (l *List[T]) Reselect() bool {
	old := l.cursor
	n := len(l.items)
	switch {
	case n == 0:
		l.cursor = noSelection
	case l.exitPoint >= 0 && l.exitPoint < n:
		l.cursor = l.exitPoint
	default:
		l.cursor = 0
	}
	return old != l.cursor
}

// ReselectThenNext restores the exit point and advances one entry.
func (l *List[T]) ReselectThenNext() bool {
	old := l.cursor
	l.Reselect()
	l.Next()
	return old != l.cursor
}

// ReselectThenPrev restores the exit point and steps back one entry.
func (l *List[T]) ReselectThenPrev() bool {
	old := l.cursor
	l.Reselect()
	l.Prev()
	return old != l.cursor
}

// Insert builds a new entry and appends it without moving the cursor. It
// returns the built entry, or false when the list has no builder.
func (l *List[T]) Insert(title, description string) (T, bool) {
	if l.build == nil {
		var zero T
		return zero, false
	}
	item := l.build(title, description)
	l.items = append(l.items, item)
	return item, true
}
