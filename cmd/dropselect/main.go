package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dropselect/filters"
	"dropselect/internal/config"
	"dropselect/internal/eventbus"
	"dropselect/internal/ui"
	"dropselect/options"
	"dropselect/selection"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("dropselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService("")
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create the shared selection state
	var sel selection.Selection
	switch cfg.Mode {
	case config.ModeOne:
		sel = selection.One(0)
	case config.ModeMultiple:
		sel = selection.Multiple(cfg.Initial...)
	default:
		sel = selection.None()
	}

	var match filters.Matcher
	switch cfg.Filter {
	case config.FilterPrefix:
		match = filters.FoldPrefix
	case config.FilterFuzzy:
		match = filters.Fuzzy
	default:
		match = filters.FoldContains
	}

	state := options.New(cfg.Options, sel, filters.Strings(match))

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Create UI model and run the program
	m := ui.NewModel(state, bus, func(s string) string { return s }, cfg.Placeholder)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	for _, e := range state.SelectedItems() {
		fmt.Println(e.Item)
	}
}
