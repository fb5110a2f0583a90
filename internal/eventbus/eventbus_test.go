package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dropselect/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestPublishDeliversToSubscribedType(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(domain.EventItemSelected, rec.handle)

	b.Publish(domain.ItemSelectedEvent{Index: 2, Label: "Third"})
	b.Publish(domain.SelectionClearedEvent{}) // different type, not subscribed

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	got, ok := rec.events[0].(domain.ItemSelectedEvent)
	require.True(t, ok)
	require.Equal(t, 2, got.Index)
	require.Equal(t, "Third", got.Label)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	unsubscribe := b.Subscribe(domain.EventFilterApplied, rec.handle)

	b.Publish(domain.FilterAppliedEvent{Query: "fir", Matches: 2})
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	unsubscribe()
	b.Publish(domain.FilterAppliedEvent{Query: "firs", Matches: 2})

	// Give the dispatcher a beat; the count must not move.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, rec.count())
}

func TestMultipleSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	a, c := &recorder{}, &recorder{}
	b.Subscribe(domain.EventItemRemoved, a.handle)
	b.Subscribe(domain.EventItemRemoved, c.handle)

	b.Publish(domain.ItemRemovedEvent{Index: 1, Label: "Second"})

	require.Eventually(t, func() bool { return a.count() == 1 && c.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	b := New()

	rec := &recorder{}
	b.Subscribe(domain.EventOptionsReplaced, rec.handle)

	for i := 0; i < 10; i++ {
		b.Publish(domain.OptionsReplacedEvent{Count: i})
	}
	b.Close()

	require.Equal(t, 10, rec.count())
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(domain.EventSelectionCleared, func(Event) { panic("boom") })
	b.Subscribe(domain.EventSelectionCleared, rec.handle)

	b.Publish(domain.SelectionClearedEvent{})
	b.Publish(domain.SelectionClearedEvent{})

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}
