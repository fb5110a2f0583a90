package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"dropselect/internal/domain"
	"dropselect/internal/eventbus"
	"dropselect/options"
)

// Model is the dropdown widget: a search box over an option list with a
// highlighted row. It owns no selection logic itself; every mutation goes
// through the shared options.State handle and the view re-renders from its
// derived queries.
type Model[T any] struct {
	state   *options.State[T]
	bus     eventbus.EventBus
	display options.DisplayFunc[T]
	styles  *Styles

	input     textinput.Model
	highlight int // position within the filtered view, not an absolute index
	width     int
	quitting  bool
}

// NewModel creates a dropdown over the given state handle. The bus may be
// nil when nobody listens for widget events.
func NewModel[T any](state *options.State[T], bus eventbus.EventBus, display options.DisplayFunc[T], placeholder string) Model[T] {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Focus()

	return Model[T]{
		state:   state,
		bus:     bus,
		display: display,
		styles:  NewStyles(),
		input:   ti,
		width:   80,
	}
}

// Init implements tea.Model
func (m Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEsc:
			if m.input.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.resetSearch()
			return m, nil

		case tea.KeyUp:
			if m.highlight > 0 {
				m.highlight--
			}
			return m, nil

		case tea.KeyDown:
			if m.highlight < m.visibleRows()-1 {
				m.highlight++
			}
			return m, nil

		case tea.KeyEnter:
			m.accept()
			return m, nil

		case tea.KeyCtrlL:
			if m.state.Clear() {
				m.publish(domain.SelectionClearedEvent{})
			}
			return m, nil

		case tea.KeyCtrlX:
			m.removeLast()
			return m, nil
		}

		// Everything else edits the search box.
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.applyQuery(after)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model[T]) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("dropselect"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.selectionLine())
	b.WriteString("\n\n")

	entries := m.state.FilteredItems()
	if len(entries) == 0 {
		if _, active := m.state.Query(); active {
			b.WriteString(m.styles.NoMatch.Render("no matches"))
		} else {
			b.WriteString(m.styles.Dim.Render("no options"))
		}
		b.WriteString("\n")
	}
	for pos, e := range entries {
		label := runewidth.Truncate(m.display(e.Item), m.width-4, "…")
		marker := "  "
		if e.Selected {
			marker = m.styles.Selected.Render("✓ ")
		}
		line := marker + label
		if pos == m.highlight {
			line = m.styles.Highlight.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ move · enter select · esc clear · ctrl+l clear all · ctrl+c quit"))
	return b.String()
}

// selectionLine renders the current selection: a tag per item in multiple
// mode, a single label (or placeholder) otherwise.
func (m Model[T]) selectionLine() string {
	selected := m.state.SelectedItems()
	if m.state.IsMultiple() {
		if len(selected) == 0 {
			return m.styles.Placeholder.Render("nothing selected")
		}
		tags := make([]string, len(selected))
		for i, e := range selected {
			tags[i] = m.styles.Tag.Render(m.display(e.Item))
		}
		return strings.Join(tags, " ")
	}
	if len(selected) == 0 {
		return m.styles.Placeholder.Render("nothing selected")
	}
	return m.styles.Selected.Render(m.display(selected[0].Item))
}

// accept resolves the highlighted row to an absolute index and selects it,
// falling back to the first visible row. In multiple mode an already
// selected row toggles off instead.
func (m *Model[T]) accept() {
	entry, ok := m.state.GetFiltered(m.highlight)
	if !ok {
		entry, ok = m.state.FirstFiltered()
	}
	if !ok {
		return
	}

	label := m.display(entry.Item)
	if m.state.IsMultiple() {
		if sel := m.state.SelectedItems(); includesIndex(sel, entry.Index) {
			if m.state.Deselect(entry.Index) {
				m.publish(domain.ItemRemovedEvent{Index: entry.Index, Label: label})
			}
			return
		}
		if m.state.Select(entry.Index) {
			m.publish(domain.ItemSelectedEvent{Index: entry.Index, Label: label})
		}
		return
	}

	if m.state.Select(entry.Index) {
		m.publish(domain.ItemSelectedEvent{Index: entry.Index, Label: label})
	}
	m.resetSearch()
}

// removeLast deselects the highest selected index (the last rendered tag).
func (m *Model[T]) removeLast() {
	selected := m.state.SelectedItems()
	if len(selected) == 0 {
		return
	}
	last := selected[len(selected)-1]
	if m.state.Deselect(last.Index) {
		m.publish(domain.ItemRemovedEvent{Index: last.Index, Label: m.display(last.Item)})
	}
}

func (m *Model[T]) applyQuery(query string) {
	m.state.Filter(query)
	m.highlight = 0
	if query == "" {
		m.publish(domain.FilterClearedEvent{})
		return
	}
	m.publish(domain.FilterAppliedEvent{Query: query, Matches: m.visibleRows()})
}

func (m *Model[T]) resetSearch() {
	m.input.SetValue("")
	m.state.Unfilter()
	m.highlight = 0
	m.publish(domain.FilterClearedEvent{})
}

func (m Model[T]) visibleRows() int {
	return len(m.state.FilteredItems())
}

func (m Model[T]) publish(e domain.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func includesIndex[T any](entries []options.Entry[T], index int) bool {
	for _, e := range entries {
		if e.Index == index {
			return true
		}
	}
	return false
}
