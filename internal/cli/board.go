package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/board"
	"github.com/idilsaglam/todoboard/internal/todo"
	"github.com/idilsaglam/todoboard/internal/ui"
)

func (a *app) runBoard(cmd *cobra.Command, _ []string) error {
	if !isTerminal(a.stdin) || !isTerminal(a.stdout) {
		return errNoTerminal
	}
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}
	lg, err := a.logger(cfg, nil)
	if err != nil {
		return err
	}
	defer lg.Close()

	switch a.colorMode() {
	case ui.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ui.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	store := todo.New(todo.WithLogger(lg.Logger))
	m := board.New(store, board.Options{
		Theme:       cfg.Theme,
		Keys:        cfg.Keys,
		CharLimit:   cfg.Input.CharLimit,
		Placeholder: cfg.Input.Placeholder,
		Logger:      lg.Logger,
	})

	lg.Info("board opened", "theme", cfg.Theme)
	final, err := board.Run(cmd.Context(), m, tea.WithInput(a.stdin), tea.WithOutput(a.stdout))
	switch {
	case errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil:
		lg.Warn("board interrupted", "err", err)
	case err != nil:
		return fmt.Errorf("run board: %w", err)
	}

	items := final.Session().Items()
	lg.Info("board closed", "items", len(items), "revision", store.Revision())
	return a.exportItems(cfg, lg, items, a.renderer(cfg.Theme))
}
