package state

// ViewportOffset returns the index of the first visible entry.
func (l *List[T]) ViewportOffset() int {
	return l.viewportOffset
}

// EnsureCursorVisible adjusts the viewport offset so the selected entry fits
// inside maxRows rows. height reports the rows an entry occupies; nil means one
// row per entry. Without a selection the offset is only clamped.
func (l *List[T]) EnsureCursorVisible(maxRows int, height func(T) int) {
	n := len(l.items)
	if n == 0 {
		l.viewportOffset = 0
		return
	}
	if l.viewportOffset < 0 {
		l.viewportOffset = 0
	}
	if l.viewportOffset > n-1 {
		l.viewportOffset = n - 1
	}
	if maxRows <= 0 {
		l.viewportOffset = 0
		return
	}
	cursor, ok := l.Selected()
	if !ok {
		return
	}
	if cursor < l.viewportOffset {
		l.viewportOffset = cursor
		return
	}
	rowsOf := func(item T) int {
		if height == nil {
			return 1
		}
		if h := height(item); h > 0 {
			return h
		}
		return 1
	}
	used := 0
	for i := l.viewportOffset; i <= cursor; i++ {
		used += rowsOf(l.items[i])
	}
	for used > maxRows && l.viewportOffset < cursor {
		used -= rowsOf(l.items[l.viewportOffset])
		l.viewportOffset++
	}
}

// VisibleRange returns the half-open index range of entries that fit inside
// maxRows rows starting at the viewport offset. The first entry is always
// included, even when it is taller than maxRows.
func (l *List[T]) VisibleRange(maxRows int, height func(T) int) (int, int) {
	n := len(l.items)
	start := l.viewportOffset
	if start < 0 || start >= n {
		start = 0
	}
	if n == 0 {
		return 0, 0
	}
	end := start
	used := 0
	for end < n {
		h := 1
		if height != nil {
			if v := height(l.items[end]); v > 0 {
				h = v
			}
		}
		if end > start && used+h > maxRows {
			break
		}
		used += h
		end++
	}
	return start, end
}
