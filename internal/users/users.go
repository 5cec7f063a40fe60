package users

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"

	"go.uber.org/zap"

	"storyfreak/internal/domain"
	"storyfreak/internal/eventbus"
	"storyfreak/internal/storage"
	"storyfreak/internal/table"
)

//go:embed users.json
var seedJSON []byte

// ErrUserNotFound is returned when an id matches no stored user
var ErrUserNotFound = errors.New("user not found")

// Seed returns a fresh copy of the built-in user list
func Seed() []domain.User {
	var seed []domain.User
	if err := json.Unmarshal(seedJSON, &seed); err != nil {
		panic(fmt.Sprintf("users: embedded seed is invalid: %v", err))
	}
	return seed
}

// Patch carries the fields to change in Update; nil fields are left alone
type Patch struct {
	Name   *string
	Email  *string
	Role   *string
	Status *domain.UserStatus
}

// Repository persists users, input values and the theme in a Storage.
// Values are stored as JSON strings.
type Repository struct {
	store storage.Storage
	bus   eventbus.EventBus
	log   *zap.Logger
}

// NewRepository wraps store. bus and log may be nil.
func NewRepository(store storage.Storage, bus eventbus.EventBus, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{store: store, bus: bus, log: log.Named("users")}
}

// Users returns the stored list. When nothing is stored yet the seed is
// persisted and returned; unreadable data falls back to the seed.
func (r *Repository) Users() []domain.User {
	raw, err := r.store.GetItem(storage.KeyUsers)
	if errors.Is(err, storage.ErrNotFound) {
		seed := Seed()
		if err := r.write(storage.KeyUsers, seed); err != nil {
			r.fail("Could not save the default users", err)
		}
		return seed
	}
	if err != nil {
		r.fail("Could not load users, showing defaults", err)
		return Seed()
	}

	var list []domain.User
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.fail("Stored users are unreadable, showing defaults", err)
		return Seed()
	}
	return list
}

// SaveUsers replaces the stored list
func (r *Repository) SaveUsers(list []domain.User) error {
	if list == nil {
		list = []domain.User{}
	}
	if err := r.write(storage.KeyUsers, list); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	r.publish(domain.UsersChangedEvent{Users: list})
	return nil
}

// Add stores u under the next numeric id and returns it
func (r *Repository) Add(u domain.User) (domain.User, error) {
	list := r.Users()
	u.ID = strconv.Itoa(maxID(list) + 1)
	if err := r.SaveUsers(append(list, u)); err != nil {
		return domain.User{}, err
	}
	r.log.Info("user added", zap.String("id", u.ID), zap.String("name", u.Name))
	return u, nil
}

// Update merges patch into the user with id
func (r *Repository) Update(id string, patch Patch) (domain.User, error) {
	list := r.Users()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		u := &list[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		if err := r.SaveUsers(list); err != nil {
			return domain.User{}, err
		}
		return *u, nil
	}
	return domain.User{}, fmt.Errorf("update %s: %w", id, ErrUserNotFound)
}

// Delete removes the user with id and reports whether one was removed
func (r *Repository) Delete(id string) (bool, error) {
	list := r.Users()
	kept := make([]domain.User, 0, len(list))
	for _, u := range list {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	if err := r.SaveUsers(kept); err != nil {
		return false, err
	}
	r.log.Info("user deleted", zap.String("id", id))
	return true, nil
}

// InputValues returns persisted input field values keyed by field slug
func (r *Repository) InputValues() map[string]string {
	values := make(map[string]string)
	raw, err := r.store.GetItem(storage.KeyInputValues)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.fail("Could not load saved input values", err)
		}
		return values
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		r.fail("Saved input values are unreadable", err)
		return make(map[string]string)
	}
	return values
}

// SaveInputValues replaces the persisted input values
func (r *Repository) SaveInputValues(values map[string]string) error {
	if err := r.write(storage.KeyInputValues, values); err != nil {
		return fmt.Errorf("failed to save input values: %w", err)
	}
	r.publish(domain.InputValuesChangedEvent{Values: maps.Clone(values)})
	return nil
}

// Theme returns the persisted theme, or fallback when none is stored
func (r *Repository) Theme(fallback domain.Theme) domain.Theme {
	raw, err := r.store.GetItem(storage.KeyTheme)
	if err != nil {
		return fallback
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		r.log.Warn("ignoring stored theme", zap.String("value", raw))
		return fallback
	}
	return theme
}

// SaveTheme persists theme
func (r *Repository) SaveTheme(theme domain.Theme) error {
	if err := r.store.SetItem(storage.KeyTheme, theme.String()); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	r.publish(domain.ThemeChangedEvent{Theme: theme})
	return nil
}

// ClearAll removes every storyfreak key
func (r *Repository) ClearAll() error {
	for _, key := range storage.AllKeys {
		if err := r.store.RemoveItem(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	r.publish(domain.StorageClearedEvent{})
	return nil
}

func (r *Repository) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.SetItem(key, string(data))
}

// fail logs an error the repository recovered from and reports it on the bus
func (r *Repository) fail(msg string, err error) {
	r.log.Error(msg, zap.Error(err))
	r.publish(domain.ErrorEvent{Message: msg, Err: err})
}

func (r *Repository) publish(e domain.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}

func maxID(list []domain.User) int {
	highest := 0
	for _, u := range list {
		if n, err := strconv.Atoi(u.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

// Columns is the column set the showcase table uses for users
func Columns() []table.Column {
	return []table.Column{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "email", Title: "Email", DataIndex: "email", Sortable: true},
		{Key: "role", Title: "Role", DataIndex: "role", Sortable: true},
		{Key: "status", Title: "Status", DataIndex: "status", Sortable: true},
	}
}

// Rows converts users to table rows. The user id is kept under "id".
func Rows(list []domain.User) []*table.Row {
	rows := make([]*table.Row, len(list))
	for i, u := range list {
		rows[i] = table.NewRow(map[string]any{
			"id":     u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"role":   u.Role,
			"status": u.StatusName(),
		})
	}
	return rows
}

// IDs extracts the user ids from rows built by Rows
func IDs(rows []*table.Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.String("id"))
	}
	return ids
}
