package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyfreak/internal/config"
	"storyfreak/internal/eventbus"
	"storyfreak/internal/storage"
	"storyfreak/internal/users"
)

func receive(t *testing.T, msgs <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message forwarded")
		return nil
	}
}

func TestCorruptUsersReachStatusLine(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	fwd := NewEventForwarder(bus, nil)
	defer fwd.Stop()

	store := storage.NewMemoryStorage()
	require.NoError(t, store.SetItem(storage.KeyUsers, "{not json"))
	repo := users.NewRepository(store, bus, nil)

	m := NewModel(config.DefaultConfig(t.TempDir()), repo, bus, nil)
	assert.Len(t, m.Table().Rows(), len(users.Seed()))

	msgs := make(chan tea.Msg, 8)
	fwd.Start(func(msg tea.Msg) { msgs <- msg })

	msg := receive(t, msgs)
	require.IsType(t, EventMsg{}, msg)
	m.Update(msg)
	assert.Equal(t, "Error: Stored users are unreadable, showing defaults", m.StatusMessage())
}

func TestForwarderSkipsOtherEventsAndStops(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	fwd := NewEventForwarder(bus, nil)

	msgs := make(chan tea.Msg, 8)
	fwd.Start(func(msg tea.Msg) { msgs <- msg })

	bus.Publish(eventbus.SortChangedEvent{Key: "name", Direction: "asc"})
	bus.Publish(eventbus.ConfigSavedEvent{})

	msg := receive(t, msgs)
	assert.Equal(t, EventMsg{Event: eventbus.ConfigSavedEvent{}}, msg)

	fwd.Stop()
	fwd.Stop()
	bus.Publish(eventbus.ErrorEvent{Message: "late"})
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message after stop: %v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
