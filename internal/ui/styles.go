package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the dropdown
type Styles struct {
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	Tag         lipgloss.Style
	Dim         lipgloss.Style
	NoMatch     lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Dim:     lipgloss.NewStyle().Faint(true),
		NoMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true), // red
		Help:    lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
