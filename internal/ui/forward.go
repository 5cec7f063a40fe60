package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"storyfreak/internal/eventbus"
)

// forwardedEvents are the bus events the showcase shows in its status line
var forwardedEvents = []eventbus.EventType{
	eventbus.EventError,
	eventbus.EventConfigSaved,
}

// EventForwarder buffers bus events for the UI from the moment it is
// created and delivers them as EventMsg once started.
type EventForwarder struct {
	log    *zap.Logger
	events chan eventbus.DomainEvent
	unsubs []func()
	done   chan struct{}
	once   sync.Once
}

// NewEventForwarder subscribes to the events the UI displays
func NewEventForwarder(bus eventbus.EventBus, log *zap.Logger) *EventForwarder {
	if log == nil {
		log = zap.NewNop()
	}
	f := &EventForwarder{
		log:    log,
		events: make(chan eventbus.DomainEvent, 100),
		done:   make(chan struct{}),
	}
	for _, t := range forwardedEvents {
		f.unsubs = append(f.unsubs, bus.Subscribe(t, f.enqueue))
	}
	return f
}

func (f *EventForwarder) enqueue(e eventbus.DomainEvent) {
	select {
	case f.events <- e:
	default:
		f.log.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
	}
}

// Start delivers buffered and future events to send, usually tea.Program.Send
func (f *EventForwarder) Start(send func(tea.Msg)) {
	go func() {
		for {
			select {
			case e := <-f.events:
				send(EventMsg{Event: e})
			case <-f.done:
				return
			}
		}
	}()
}

// Stop unsubscribes and ends delivery
func (f *EventForwarder) Stop() {
	f.once.Do(func() {
		for _, unsubscribe := range f.unsubs {
			unsubscribe()
		}
		close(f.done)
	})
}
