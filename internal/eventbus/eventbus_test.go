package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventThemeChanged, func(e DomainEvent) { got <- e })

	b.Publish(ThemeChangedEvent{})

	select {
	case e := <-got:
		assert.Equal(t, EventThemeChanged, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var seen []EventType
	record := func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.Type())
	}
	b.Subscribe(EventUsersChanged, record)

	b.Publish(SortChangedEvent{Key: "name"})
	b.Publish(UsersChangedEvent{})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1
	}, time.Second, 10*time.Millisecond)
	b.Close()

	assert.Equal(t, []EventType{EventUsersChanged}, seen)
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	first, second := 0, 0
	unsubscribe := b.Subscribe(EventStorageCleared, func(DomainEvent) {
		mu.Lock()
		first++
		mu.Unlock()
	})
	b.Subscribe(EventStorageCleared, func(DomainEvent) {
		mu.Lock()
		second++
		mu.Unlock()
	})

	unsubscribe()
	b.Publish(StorageClearedEvent{})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return second == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, first)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventConfigSaved, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(ConfigSavedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher stopped after handler panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	called := false
	b.Subscribe(EventConfigSaved, func(DomainEvent) { called = true })
	b.Close()
	b.Close()

	b.Publish(ConfigSavedEvent{})
	assert.False(t, called)
}
