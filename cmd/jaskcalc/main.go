package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/logging"
	"github.com/jask/jaskcalc/internal/theme"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closer.Close()

	palette, err := theme.Default().WithOverrides(cfg.Palette)
	if err != nil {
		log.Fatalf("palette: %v", err)
	}

	logger.Info("starting", "config", config.Path(), "mouse", cfg.UI.Mouse)

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.New(cfg.UI, palette, logger), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Info("exiting")
}
