// Package ui contains the Bubble Tea program that renders the list and the
// notification queue.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg type has one handler.
//   - Key presses are interpreted by internal/input for the active context.
//     The resulting action is applied in actions.go: Quit stops the program,
//     ChangeContext switches between Default and List (deselecting or
//     reselecting the list), and list operations move the cursor or append.
//   - A backend.Ticker streams tick events; each one rotates the notification
//     queue through the data dispatcher and re-arms the wait.
//
// State ownership:
//   - The list, its cursor and exit point live in internal/ui/state.List.
//   - Entries and notifications are defined in internal/state.
//
// A context change into the already active context is a contract violation:
// the model records the error, logs it and quits. Callers read it back via
// Model.Err once the program has returned.
package ui
