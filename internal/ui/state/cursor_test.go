package state

import "testing"

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.cursor = 4
	l.EnsureCursorVisible(2, nil)
	if l.ViewportOffset() != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset())
	}

	l.cursor = 1
	l.EnsureCursorVisible(2, nil)
	if l.ViewportOffset() != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset())
	}

	l.viewportOffset = 4
	l.EnsureCursorVisible(0, nil)
	if l.ViewportOffset() != 0 {
		t.Fatalf("expected offset reset when maxRows <= 0, got %d", l.ViewportOffset())
	}
}

func TestEnsureCursorVisibleWithTallEntries(t *testing.T) {
	l := newTestList("a", "b", "c", "d")
	heights := map[testEntry]int{"a": 3, "b": 3, "c": 1, "d": 2}
	height := func(e testEntry) int { return heights[e] }

	l.cursor = 2
	l.EnsureCursorVisible(4, height)
	// a+b+c = 7 rows; dropping a leaves b+c = 4.
	if l.ViewportOffset() != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset())
	}

	l.cursor = 3
	l.EnsureCursorVisible(2, height)
	if l.ViewportOffset() != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset())
	}
}

func TestEnsureCursorVisibleWithoutSelectionClamps(t *testing.T) {
	l := newTestList("a", "b")
	l.viewportOffset = 7
	l.EnsureCursorVisible(5, nil)
	if l.ViewportOffset() != 1 {
		t.Fatalf("expected offset clamped to 1, got %d", l.ViewportOffset())
	}

	empty := newTestList()
	empty.viewportOffset = 3
	empty.EnsureCursorVisible(5, nil)
	if empty.ViewportOffset() != 0 {
		t.Fatalf("expected offset 0 for empty list, got %d", empty.ViewportOffset())
	}
}

func TestVisibleRange(t *testing.T) {
	l := newTestList("a", "b", "c", "d")
	height := func(e testEntry) int {
		if e == "b" {
			return 3
		}
		return 1
	}
	start, end := l.VisibleRange(4, height)
	if start != 0 || end != 2 {
		t.Fatalf("expected [0,2), got [%d,%d)", start, end)
	}

	l.viewportOffset = 1
	start, end = l.VisibleRange(2, height)
	if start != 1 || end != 2 {
		t.Fatalf("expected oversized first entry to be kept, got [%d,%d)", start, end)
	}

	if start, end := newTestList().VisibleRange(3, nil); start != 0 || end != 0 {
		t.Fatalf("expected empty range, got [%d,%d)", start, end)
	}
}
