package ui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dropselect/filters"
	"dropselect/internal/domain"
	"dropselect/internal/eventbus"
	"dropselect/options"
	"dropselect/selection"
)

var demoItems = []string{
	"First", "Second", "Third", "Fourth", "Fifth", `Something else with "first"`,
}

func identity(s string) string { return s }

// fakeBus records published events synchronously.
type fakeBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *fakeBus) Publish(e eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *fakeBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *fakeBus) Close() {}

func (b *fakeBus) types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.EventType, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type()
	}
	return out
}

func newTestModel(sel selection.Selection, bus eventbus.EventBus) Model[string] {
	state := options.New(demoItems, sel, filters.Strings(filters.FoldContains))
	return NewModel(state, bus, identity, "Type to search")
}

// keyMsg creates a tea.KeyMsg for typed text
func typeText(m Model[string], text string) Model[string] {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model[string])
	}
	return m
}

func press(m Model[string], key tea.KeyType) (Model[string], tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model[string]), cmd
}

func TestTypingNarrowsRows(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	m = typeText(m, "first")

	if got := m.visibleRows(); got != 2 {
		t.Fatalf("expected 2 visible rows, got %d", got)
	}
	view := m.View()
	if !strings.Contains(view, `Something else with "first"`) {
		t.Errorf("view should show the second match:\n%s", view)
	}
	if strings.Contains(view, "Second") {
		t.Errorf("view should not show non-matching rows:\n%s", view)
	}
}

func TestNoMatchesMessage(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	m = typeText(m, "zzz")

	if !strings.Contains(m.View(), "no matches") {
		t.Errorf("view should report no matches:\n%s", m.View())
	}
}

func TestEnterSelectsHighlightedRow(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	m = typeText(m, "first")
	m, _ = press(m, tea.KeyDown) // highlight the second match, absolute index 5
	m, _ = press(m, tea.KeyEnter)

	first, ok := m.state.FirstSelected()
	if !ok || first.Index != 5 {
		t.Fatalf("expected absolute index 5 selected, got %+v ok=%v", first, ok)
	}
	// Accepting a single-select resets the search.
	if m.input.Value() != "" {
		t.Errorf("search box should be reset, got %q", m.input.Value())
	}
	if !m.state.FilterState().IsAll() {
		t.Error("filter should be cleared after accepting")
	}
}

func TestEnterFallsBackToFirstMatch(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	m = typeText(m, "fourth")
	m, _ = press(m, tea.KeyEnter)

	first, ok := m.state.FirstSelected()
	if !ok || first.Item != "Fourth" {
		t.Fatalf("expected Fourth selected, got %+v ok=%v", first, ok)
	}
}

func TestMultipleModeToggles(t *testing.T) {
	m := newTestModel(selection.Empty(), nil)

	m, _ = press(m, tea.KeyEnter) // select row 0
	m, _ = press(m, tea.KeyEnter) // toggle it back off

	if got := len(m.state.SelectedItems()); got != 0 {
		t.Fatalf("expected empty selection after toggle, got %d items", got)
	}
}

func TestMultipleModeKeepsSearchOpen(t *testing.T) {
	m := newTestModel(selection.Empty(), nil)

	m = typeText(m, "th")
	m, _ = press(m, tea.KeyEnter)

	if m.input.Value() != "th" {
		t.Errorf("multi-select should keep the query, got %q", m.input.Value())
	}
	if len(m.state.SelectedItems()) != 1 {
		t.Error("expected one selected item")
	}
}

func TestCtrlXRemovesLastTag(t *testing.T) {
	m := newTestModel(selection.Multiple(1, 3), nil)

	m, _ = press(m, tea.KeyCtrlX)

	sel := m.state.SelectedItems()
	if len(sel) != 1 || sel[0].Index != 1 {
		t.Fatalf("expected only index 1 left, got %+v", sel)
	}
}

func TestCtrlLClearsSelection(t *testing.T) {
	m := newTestModel(selection.Multiple(0, 2), nil)

	m, _ = press(m, tea.KeyCtrlL)

	if len(m.state.SelectedItems()) != 0 {
		t.Error("expected selection cleared")
	}
}

func TestEscClearsSearchThenQuits(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	m = typeText(m, "fir")
	m, cmd := press(m, tea.KeyEsc)
	if cmd != nil {
		t.Error("esc with text should only clear the search")
	}
	if m.input.Value() != "" || !m.state.FilterState().IsAll() {
		t.Error("esc should clear query and filter")
	}

	_, cmd = press(m, tea.KeyEsc)
	if cmd == nil {
		t.Fatal("esc on empty search should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}
}

func TestPlaceholderShownWhenNullableAndEmpty(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	if !strings.Contains(m.View(), "nothing selected") {
		t.Errorf("nullable empty selection should show placeholder:\n%s", m.View())
	}

	one := newTestModel(selection.One(2), nil)
	if !strings.Contains(one.View(), "Third") {
		t.Errorf("exactly-one selection should show its item:\n%s", one.View())
	}
}

func TestWidgetPublishesEvents(t *testing.T) {
	bus := &fakeBus{}
	m := newTestModel(selection.Empty(), bus)

	m = typeText(m, "f")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyCtrlL)

	types := bus.types()
	want := []domain.EventType{
		domain.EventFilterApplied,
		domain.EventItemSelected,
		domain.EventSelectionCleared,
	}
	if len(types) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), types)
	}
	for i, w := range want {
		if types[i] != w {
			t.Errorf("event %d = %s, want %s", i, types[i], w)
		}
	}
}

func TestHighlightClampedToVisible(t *testing.T) {
	m := newTestModel(selection.None(), nil)

	for i := 0; i < 20; i++ {
		m, _ = press(m, tea.KeyDown)
	}
	if m.highlight != len(demoItems)-1 {
		t.Fatalf("highlight should clamp to last row, got %d", m.highlight)
	}

	m = typeText(m, "first") // narrows to 2 rows, highlight resets
	if m.highlight != 0 {
		t.Fatalf("highlight should reset on a new query, got %d", m.highlight)
	}
}
