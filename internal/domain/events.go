package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventUsersChanged       EventType = "UsersChanged"
	EventSelectionChanged   EventType = "SelectionChanged"
	EventSortChanged        EventType = "SortChanged"
	EventThemeChanged       EventType = "ThemeChanged"
	EventInputValuesChanged EventType = "InputValuesChanged"
	EventStorageCleared     EventType = "StorageCleared"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// UsersChangedEvent is emitted after the persisted user list was rewritten
type UsersChangedEvent struct {
	Users []User
}

func (e UsersChangedEvent) Type() EventType { return EventUsersChanged }

// SelectionChangedEvent is emitted when the table selection changes
type SelectionChangedEvent struct {
	IDs   []string // ids of the selected users, in selection order
	Total int      // rows in the table
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SortChangedEvent is emitted when a column sort is applied or cleared
type SortChangedEvent struct {
	Key       string // empty when the sort was cleared
	Direction string
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// ThemeChangedEvent is emitted when the theme toggle flips
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// InputValuesChangedEvent is emitted after input field values were persisted
type InputValuesChangedEvent struct {
	Values map[string]string
}

func (e InputValuesChangedEvent) Type() EventType { return EventInputValuesChanged }

// StorageClearedEvent is emitted when every storyfreak key was removed
type StorageClearedEvent struct{}

func (e StorageClearedEvent) Type() EventType { return EventStorageCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	StoragePath string
	Theme       Theme
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
