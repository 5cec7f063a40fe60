package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"storyfreak/internal/domain"
	"storyfreak/internal/eventbus"
)

const (
	// FileName is the config file name inside the storyfreak directory
	FileName = ".storyfreak.toml"
	// StorageFileName is the default key-value store next to the config
	StorageFileName = "storage.toml"

	defaultLoadingRows = 5
)

// Config represents the application configuration
type Config struct {
	Version     int           `toml:"version"`
	StoragePath string        `toml:"storage_path"`
	LogFile     string        `toml:"log_file"`
	UI          UISettings    `toml:"ui"`
	Input       InputSettings `toml:"input"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme       domain.Theme `toml:"theme"`
	Selectable  bool         `toml:"selectable"`
	ShowActions bool         `toml:"show_actions"`
	LoadingRows int          `toml:"loading_rows"`
}

// InputSettings holds the default look of the showcase input fields.
// Values are validated by the input package.
type InputSettings struct {
	Variant string `toml:"variant"`
	Size    string `toml:"size"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path.
// An empty path selects the file inside DefaultDir.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), FileName)
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultDir returns the per-user storyfreak directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "storyfreak")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig(filepath.Dir(cs.filePath))
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			StoragePath: cfg.StoragePath,
			Theme:       cfg.UI.Theme,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// A missing file yields an error wrapping os.ErrNotExist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig(filepath.Dir(path))
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize(filepath.Dir(path))

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration rooted at dir
func DefaultConfig(dir string) *Config {
	return &Config{
		Version:     1,
		StoragePath: filepath.Join(dir, StorageFileName),
		UI: UISettings{
			Theme:       domain.ThemeLight,
			Selectable:  true,
			ShowActions: true,
			LoadingRows: defaultLoadingRows,
		},
		Input: InputSettings{
			Variant: "outlined",
			Size:    "md",
		},
	}
}

func (c *Config) normalize(dir string) {
	if c.StoragePath == "" {
		c.StoragePath = filepath.Join(dir, StorageFileName)
	} else if !filepath.IsAbs(c.StoragePath) {
		c.StoragePath = filepath.Join(dir, c.StoragePath)
	}
	if c.UI.LoadingRows <= 0 {
		c.UI.LoadingRows = defaultLoadingRows
	}
}
