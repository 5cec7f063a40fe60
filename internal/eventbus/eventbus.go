package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"storyfreak/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventUsersChanged       = domain.EventUsersChanged
	EventSelectionChanged   = domain.EventSelectionChanged
	EventSortChanged        = domain.EventSortChanged
	EventThemeChanged       = domain.EventThemeChanged
	EventInputValuesChanged = domain.EventInputValuesChanged
	EventStorageCleared     = domain.EventStorageCleared
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type UsersChangedEvent = domain.UsersChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type SortChangedEvent = domain.SortChangedEvent
type ThemeChangedEvent = domain.ThemeChangedEvent
type InputValuesChangedEvent = domain.InputValuesChangedEvent
type StorageClearedEvent = domain.StorageClearedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

const bufferSize = 256

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	log *zap.Logger

	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64

	eventChan chan DomainEvent
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup // dispatcher
	inflight  sync.WaitGroup // running handlers
}

// New creates a new event bus and starts its dispatcher
func New(log *zap.Logger) EventBus {
	if log == nil {
		log = zap.NewNop()
	}
	b := &bus{
		log:       log.Named("eventbus"),
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, bufferSize),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers; it never blocks
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		b.log.Debug("publish after close", zap.String("event", string(event.Type())))
		return
	default:
	}

	b.log.Debug("publishing event", zap.String("event", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		b.log.Warn("event channel full, dropping event", zap.String("event", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher, drops queued events and waits for running handlers
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
		b.inflight.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.inflight.Add(1)
				go func(h EventHandler) {
					defer b.inflight.Done()
					defer func() {
						if r := recover(); r != nil {
							b.log.Error("event handler panic",
								zap.String("event", string(event.Type())),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
