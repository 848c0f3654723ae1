package input

import (
	"errors"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDispatchDefaultContext(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"lower q quits", runeKey('q'), Quit{}},
		{"upper Q quits", runeKey('Q'), Quit{}},
		{"l focuses list", runeKey('l'), ChangeContext{Target: ContextList}},
		{"left restores exit point", tea.KeyMsg{Type: tea.KeyLeft}, ListOp{Op: Navigate{Direction: DirectionExitPoint}}},
		{"up peeks up", tea.KeyMsg{Type: tea.KeyUp}, ListOp{Op: Navigate{Direction: DirectionUp}}},
		{"down peeks down", tea.KeyMsg{Type: tea.KeyDown}, ListOp{Op: Navigate{Direction: DirectionDown}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dispatch(ContextDefault, tc.msg)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDispatchListContext(t *testing.T) {
	leave := ChangeContext{Target: ContextDefault}
	insert := ListOp{Op: Insert{Title: PlaceholderTitle, Description: PlaceholderDescription}}
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"upper Q quits", runeKey('Q'), Quit{}},
		{"lower q leaves list", runeKey('q'), leave},
		{"right leaves list", tea.KeyMsg{Type: tea.KeyRight}, leave},
		{"esc leaves list", tea.KeyMsg{Type: tea.KeyEsc}, leave},
		{"up moves up", tea.KeyMsg{Type: tea.KeyUp}, ListOp{Op: Navigate{Direction: DirectionUp}}},
		{"down moves down", tea.KeyMsg{Type: tea.KeyDown}, ListOp{Op: Navigate{Direction: DirectionDown}}},
		{"lower n inserts", runeKey('n'), insert},
		{"upper N inserts", runeKey('N'), insert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dispatch(ContextList, tc.msg)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDispatchUnboundKeysYieldNil(t *testing.T) {
	unbound := map[Context][]tea.KeyMsg{
		ContextDefault: {
			runeKey('L'),
			runeKey('n'),
			runeKey('x'),
			tea.KeyMsg{Type: tea.KeyRight},
			tea.KeyMsg{Type: tea.KeyEsc},
			tea.KeyMsg{Type: tea.KeyEnter},
			tea.KeyMsg{Type: tea.KeyCtrlC},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true},
		},
		ContextList: {
			runeKey('l'),
			runeKey('x'),
			tea.KeyMsg{Type: tea.KeyLeft},
			tea.KeyMsg{Type: tea.KeyTab},
			tea.KeyMsg{Type: tea.KeySpace},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}, Alt: true},
		},
	}
	for ctx, keys := range unbound {
		for _, msg := range keys {
			if got := Dispatch(ctx, msg); got != nil {
				t.Fatalf("expected no action for %q in %s, got %v", msg.String(), ctx, got)
			}
		}
	}
}

func TestDispatchUnknownContext(t *testing.T) {
	if got := Dispatch(Context(42), runeKey('q')); got != nil {
		t.Fatalf("expected nil action for unknown context, got %v", got)
	}
}

func TestTransition(t *testing.T) {
	if err := Transition(ContextDefault, ContextList); err != nil {
		t.Fatalf("expected default->list to be valid, got %v", err)
	}
	if err := Transition(ContextList, ContextDefault); err != nil {
		t.Fatalf("expected list->default to be valid, got %v", err)
	}
	if err := Transition(ContextList, ContextList); !errors.Is(err, ErrCircularContext) {
		t.Fatalf("expected circular context error, got %v", err)
	}
	if err := Transition(ContextDefault, ContextDefault); !errors.Is(err, ErrCircularContext) {
		t.Fatalf("expected circular context error, got %v", err)
	}
	if err := Transition(ContextDefault, Context(7)); !errors.Is(err, ErrUnknownContext) {
		t.Fatalf("expected unknown context error, got %v", err)
	}
}

func TestKeyMapForContext(t *testing.T) {
	if _, ok := KeyMapFor(ContextDefault).(DefaultKeyMap); !ok {
		t.Fatalf("expected default key map for default context")
	}
	if _, ok := KeyMapFor(ContextList).(ListKeyMap); !ok {
		t.Fatalf("expected list key map for list context")
	}
	if KeyMapFor(Context(9)) != nil {
		t.Fatalf("expected nil key map for unknown context")
	}
	if n := len(ListKeys().ShortHelp()); n != 5 {
		t.Fatalf("expected 5 short help bindings, got %d", n)
	}
}

func TestActionStrings(t *testing.T) {
	cases := map[string]Action{
		"quit":                     Quit{},
		"context:list":             ChangeContext{Target: ContextList},
		"list:navigate:down":       ListOp{Op: Navigate{Direction: DirectionDown}},
		`list:insert:"title"`:      ListOp{Op: Insert{Title: "title"}},
		"list:navigate:exit-point": ListOp{Op: Navigate{Direction: DirectionExitPoint}},
	}
	for want, action := range cases {
		if got := action.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
