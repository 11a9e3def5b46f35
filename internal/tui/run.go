package tui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"golife/internal/config"
	"golife/internal/game"
	"golife/internal/render"
)

// Run starts the terminal frontend and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	ctrl := game.New(game.Options{
		Size:       cfg.Dimension,
		TickDelay:  cfg.TickDelay(),
		Scale:      1,
		SplashHold: cfg.SplashHold(),
		Seed:       cfg.Seed,
		Density:    cfg.Density,
		Logger:     logger,
	})
	m, err := NewModel(ctrl, render.ThemeByName(cfg.Theme), cfg.SplashHold())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "tui")
	}
	return m.Err()
}
