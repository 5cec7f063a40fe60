package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Keys used by storyfreak
const (
	KeyUsers       = "storyfreak-users"
	KeyTheme       = "storyfreak-theme"
	KeyInputValues = "storyfreak-input-values"
)

// AllKeys lists every key storyfreak owns
var AllKeys = []string{KeyUsers, KeyTheme, KeyInputValues}

// ErrNotFound is returned by GetItem for a key that was never set
var ErrNotFound = errors.New("storage: key not found")

// Storage is a string key-value store with local-storage semantics
type Storage interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() []string
}

// MemoryStorage is an in-memory implementation of Storage
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty memory-based store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) GetItem(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.items)
}

// FileStorage persists items as a flat TOML table.
// The whole file is rewritten on every mutation.
type FileStorage struct {
	mu    sync.RWMutex
	path  string
	items map[string]string
}

// OpenFileStorage loads path, treating a missing file as an empty store
func OpenFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{path: path, items: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if err := toml.Unmarshal(data, &fs.items); err != nil {
		return nil, fmt.Errorf("failed to parse storage file %s: %w", path, err)
	}
	return fs, nil
}

// Path returns the backing file
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) GetItem(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	s.items[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *FileStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	if !had {
		return nil
	}
	delete(s.items, key)
	if err := s.flush(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *FileStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.items)
}

// flush writes via a temp file so a crash never leaves a torn store.
// Callers hold s.mu.
func (s *FileStorage) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := toml.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func sortedKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
