package state

import "testing"

func TestBestMatchIndex(t *testing.T) {
	titles := []string{"First", "Second", "Third", "Thirty"}

	if idx := BestMatchIndex(titles, "second"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(titles, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(titles, "cond"); idx != 1 {
		t.Fatalf("expected substring match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(titles, "tty"); idx != 3 {
		t.Fatalf("expected fuzzy match index 3, got %d", idx)
	}
	if idx := BestMatchIndex(titles, "zzz"); idx != -1 {
		t.Fatalf("expected -1 for no match, got %d", idx)
	}
	if idx := BestMatchIndex(titles, "  "); idx != -1 {
		t.Fatalf("expected -1 for blank query, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty titles, got %d", idx)
	}
}

func TestFocusSetsExitPointOnly(t *testing.T) {
	l := newTestList("Item0", "Item1", "Item2")
	if !l.Focus("item2") {
		t.Fatalf("expected focus to match")
	}
	if l.HasSelection() {
		t.Fatalf("expected focus to leave the list deselected")
	}
	if ep, ok := l.ExitPoint(); !ok || ep != 2 {
		t.Fatalf("expected exit point 2, got %d (%v)", ep, ok)
	}
	l.Reselect()
	assertCursor(t, l, 2, true)
}

func TestFocusWithoutMatchKeepsExitPoint(t *testing.T) {
	l := newTestList("Item0", "Item1")
	l.cursor = 1
	l.Deselect()
	if l.Focus("nothing-like-it") {
		t.Fatalf("expected focus to report no match")
	}
	if ep, _ := l.ExitPoint(); ep != 1 {
		t.Fatalf("expected exit point to stay 1, got %d", ep)
	}
}
