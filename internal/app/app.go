package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/listctx/internal/backend"
	"github.com/atomicstack/listctx/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	TickInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Focus        string
}

// Run bootstraps and executes the Bubble Tea program. It returns the
// terminal error, if any, or the fatal error that made the model quit.
func Run(cfg Config) error {
	ticker := backend.NewTicker(cfg.TickInterval)
	defer ticker.Stop()
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Focus, ticker)
	return run(tea.NewProgram(model, tea.WithAltScreen()))
}

func run(program *tea.Program) error {
	return result(program.Run())
}

// result maps the outcome of tea.Program.Run to the error Run reports.
func result(final tea.Model, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
