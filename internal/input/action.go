package input

import "fmt"

// Action is the intent produced by interpreting a key within a context.
// The set of implementations is closed: Quit, ChangeContext and ListOp.
type Action interface {
	fmt.Stringer
	action()
}

// Quit asks the application to shut down.
type Quit struct{}

// ChangeContext asks the application to switch the active context.
type ChangeContext struct {
	Target Context
}

// ListOp carries an operation aimed at the stateful list.
type ListOp struct {
	Op ListOperation
}

func (Quit) action()          {}
func (ChangeContext) action() {}
func (ListOp) action()        {}

func (Quit) String() string            { return "quit" }
func (a ChangeContext) String() string { return "context:" + a.Target.String() }
func (a ListOp) String() string {
	if a.Op == nil {
		return "list:none"
	}
	return "list:" + a.Op.String()
}

// ListOperation is either Navigate or Insert.
type ListOperation interface {
	fmt.Stringer
	listOperation()
}

// Direction names a cursor movement.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionExitPoint
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionExitPoint:
		return "exit-point"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Navigate moves or restores the list cursor.
type Navigate struct {
	Direction Direction
}

// Insert appends a new entry to the list.
type Insert struct {
	Title       string
	Description string
}

func (Navigate) listOperation() {}
func (Insert) listOperation()   {}

func (n Navigate) String() string { return "navigate:" + n.Direction.String() }
func (i Insert) String() string   { return fmt.Sprintf("insert:%q", i.Title) }
