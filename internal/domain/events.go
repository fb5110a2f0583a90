package domain

// EventType represents the type of widget event
type EventType string

// Event types
const (
	EventItemSelected     EventType = "ItemSelected"
	EventItemRemoved      EventType = "ItemRemoved"
	EventSelectionCleared EventType = "SelectionCleared"
	EventFilterApplied    EventType = "FilterApplied"
	EventFilterCleared    EventType = "FilterCleared"
	EventOptionsReplaced  EventType = "OptionsReplaced"
)

// Event is the interface for all widget events
type Event interface {
	Type() EventType
}

// ItemSelectedEvent is emitted when an option is selected
type ItemSelectedEvent struct {
	Index int
	Label string
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// ItemRemovedEvent is emitted when an option is deselected
type ItemRemovedEvent struct {
	Index int
	Label string
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// SelectionClearedEvent is emitted when the whole selection is cleared
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// FilterAppliedEvent is emitted when a search query narrows the list
type FilterAppliedEvent struct {
	Query   string
	Matches int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// FilterClearedEvent is emitted when the search box empties out
type FilterClearedEvent struct{}

func (e FilterClearedEvent) Type() EventType { return EventFilterCleared }

// OptionsReplacedEvent is emitted when the backing option list is swapped
type OptionsReplacedEvent struct {
	Count int
}

func (e OptionsReplacedEvent) Type() EventType { return EventOptionsReplaced }
