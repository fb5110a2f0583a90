package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dropselect/filters"
	"dropselect/internal/config"
	"dropselect/internal/domain"
	"dropselect/internal/eventbus"
	"dropselect/internal/ui"
	"dropselect/options"
	"dropselect/selection"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the demo config file")
	flag.StringVar(&configPath, "c", "", "Path to the demo config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("dropselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService(configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
		// Write it out on first run so the user has something to edit
		if errors.Is(err, os.ErrNotExist) {
			if saveErr := configSvc.Save(cfg); saveErr != nil {
				log.Printf("Error saving default config: %v", saveErr)
			}
		}
	}

	// Create the shared selection state
	state := options.New(cfg.Options, initialSelection(cfg), filters.Strings(matcherFor(cfg.Filter)))

	// Create event bus and log widget activity
	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	// Run the UI
	m := ui.NewModel(state, bus, func(s string) string { return s }, cfg.Placeholder)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Print the final selection so the demo is usable from shell pipelines
	for _, e := range state.SelectedItems() {
		fmt.Println(e.Item)
	}
}

// initialSelection builds the seed selection from the configured mode
func initialSelection(cfg *config.Config) selection.Selection {
	switch cfg.Mode {
	case config.ModeOne:
		if len(cfg.Initial) > 0 {
			return selection.One(cfg.Initial[0])
		}
		return selection.One(0)
	case config.ModeMultiple:
		return selection.Multiple(cfg.Initial...)
	default:
		if len(cfg.Initial) > 0 {
			return selection.Some(cfg.Initial[0])
		}
		return selection.None()
	}
}

// matcherFor maps a configured filter kind to its text matcher
func matcherFor(kind string) filters.Matcher {
	switch kind {
	case config.FilterPrefix:
		return filters.FoldPrefix
	case config.FilterFuzzy:
		return filters.Fuzzy
	default:
		return filters.FoldContains
	}
}

// subscribeLogging mirrors widget events into the log file
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(domain.EventItemSelected, func(e eventbus.Event) {
		ev := e.(domain.ItemSelectedEvent)
		log.Printf("selected %q (index %d)", ev.Label, ev.Index)
	})
	bus.Subscribe(domain.EventItemRemoved, func(e eventbus.Event) {
		ev := e.(domain.ItemRemovedEvent)
		log.Printf("removed %q (index %d)", ev.Label, ev.Index)
	})
	bus.Subscribe(domain.EventSelectionCleared, func(eventbus.Event) {
		log.Printf("selection cleared")
	})
	bus.Subscribe(domain.EventFilterApplied, func(e eventbus.Event) {
		ev := e.(domain.FilterAppliedEvent)
		log.Printf("filter %q matched %d options", ev.Query, ev.Matches)
	})
}
