package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"dropselect/internal/domain"
)

// Re-export domain types for convenience
type Event = domain.Event
type EventType = domain.EventType

// EventHandler is a function that handles widget events
type EventHandler func(Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type registration struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType][]registration
	eventChan chan Event
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]registration),
		eventChan: make(chan Event, 100),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event Event) {
	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.handlers[eventType]
		for i, r := range regs {
			if r.id == id {
				b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after draining queued events.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)
		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.Type()]
	// Make a copy to avoid holding the lock during handler execution
	regsCopy := make([]registration, len(regs))
	copy(regsCopy, regs)
	b.mu.RUnlock()

	for _, r := range regsCopy {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), rec, debug.Stack())
				}
			}()
			r.handler(event)
		}()
	}
}
