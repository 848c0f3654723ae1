// Package input turns key presses into application intents.
//
// The active Context decides which bindings apply. Dispatch is a pure
// classification step: it never touches application state, and keys without a
// binding in the current context produce a nil Action rather than an error.
// The model in internal/ui applies the resulting Action, which may switch the
// context, move or extend the list, or quit the program.
//
// Bindings are declared with bubbles/key so the same tables drive both
// dispatch and the help footer.
package input
