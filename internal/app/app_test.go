package app

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/atomicstack/listctx/internal/input"
	"github.com/atomicstack/listctx/internal/logging"
	"github.com/atomicstack/listctx/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func useTempLog(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "listctx.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func newTestProgram(model *ui.Model) *tea.Program {
	return tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(io.Discard))
}

func TestRunReturnsCircularContextError(t *testing.T) {
	useTempLog(t)
	program := newTestProgram(ui.NewModel(80, 24, false, "", nil))
	go program.Send(ui.ActionMsg{Action: input.ChangeContext{Target: input.ContextDefault}})

	err := run(program)
	if !errors.Is(err, input.ErrCircularContext) {
		t.Fatalf("expected ErrCircularContext, got %v", err)
	}
}

func TestRunQuitReturnsNil(t *testing.T) {
	useTempLog(t)
	program := newTestProgram(ui.NewModel(80, 24, false, "", nil))
	go program.Send(ui.ActionMsg{Action: input.Quit{}})

	if err := run(program); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
}

func TestResult(t *testing.T) {
	useTempLog(t)
	boom := errors.New("tty gone")

	if err := result(nil, tea.ErrProgramKilled); err != nil {
		t.Fatalf("expected killed program to map to nil, got %v", err)
	}
	if err := result(nil, boom); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped terminal error, got %v", err)
	}

	model := ui.NewModel(80, 24, false, "", nil)
	if err := result(model, nil); err != nil {
		t.Fatalf("expected nil for a clean model, got %v", err)
	}
	model.Update(ui.ActionMsg{Action: input.ChangeContext{Target: input.ContextDefault}})
	if err := result(model, nil); !errors.Is(err, input.ErrCircularContext) {
		t.Fatalf("expected model error, got %v", err)
	}
}
