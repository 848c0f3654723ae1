package input

import (
	"errors"
	"fmt"
)

// Context selects which set of key bindings interprets input.
type Context int

const (
	ContextDefault Context = iota
	ContextList
)

var (
	// ErrCircularContext reports a change into the context that is already
	// active. The dispatcher never produces one, so seeing it means the
	// dispatcher and the application state have diverged.
	ErrCircularContext = errors.New("circular context change")
	ErrUnknownContext  = errors.New("unknown context")
)

func (c Context) String() string {
	switch c {
	case ContextDefault:
		return "default"
	case ContextList:
		return "list"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared contexts.
func (c Context) Valid() bool {
	return c == ContextDefault || c == ContextList
}

// Transition validates a move from one context to another.
func Transition(from, to Context) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownContext, to)
	}
	if from == to {
		return fmt.Errorf("%w: already in %s", ErrCircularContext, from)
	}
	return nil
}
