package ui

import "storyfreak/internal/eventbus"

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event eventbus.DomainEvent
}

// Pane is the component currently shown
type Pane int

const (
	PaneTable Pane = iota
	PaneInput
)

func (p Pane) String() string {
	if p == PaneInput {
		return "InputField"
	}
	return "DataTable"
}
