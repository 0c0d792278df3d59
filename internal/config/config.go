package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"recsel/internal/eventbus"
	"recsel/internal/logging"
)

// DefaultPageSize is used when the configured page size is not permitted
const DefaultPageSize = 10

// PageSizes lists the permitted page sizes, in cycle order
var PageSizes = []int{5, 10, 20}

// Config represents the application configuration
type Config struct {
	Version               int        `toml:"version"`
	BaseURL               string     `toml:"base_url"`
	PageSize              int        `toml:"page_size"`
	Format                string     `toml:"format"` // ids, tsv or json
	RequestTimeoutSeconds int        `toml:"request_timeout_seconds"`
	LogFile               string     `toml:"log_file"` // empty means <config dir>/recsel.log
	LogLevel              string     `toml:"log_level"`
	UISettings            UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowLabels       bool `toml:"show_labels"`
	RememberPageSize bool `toml:"remember_page_size"`
}

// ValidPageSize reports whether n is a permitted page size
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// NextPageSize returns the page size following n in the cycle
func NextPageSize(n int) int {
	for i, s := range PageSizes {
		if n == s {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return DefaultPageSize
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service rooted at the user config dir
func NewService() Service {
	return &service{filePath: filepath.Join(Dir(), "config.toml")}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(bus eventbus.EventBus) Service {
	cs := NewService().(*service)
	cs.bus = bus
	return cs
}

// NewServiceAtPath creates a config service reading and writing a fixed path
func NewServiceAtPath(path string, bus eventbus.EventBus) Service {
	return &service{bus: bus, filePath: path}
}

// Dir returns the recsel configuration directory, creating it if needed
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "recsel")
	os.MkdirAll(dir, 0o755)
	return dir
}

// Path returns the file this service reads and writes
func (cs *service) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Missing file is not an error, start from defaults
		cfg := DefaultConfig()
		applyEnv(cfg)

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *service) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(cfg)
	applyEnv(cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
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

// normalize replaces out-of-range values with defaults
func normalize(cfg *Config) {
	log := logging.NewLogger("config")

	if !ValidPageSize(cfg.PageSize) {
		log.Warn().Int("page_size", cfg.PageSize).Int("fallback", DefaultPageSize).
			Msg("configured page size not permitted, using fallback")
		cfg.PageSize = DefaultPageSize
	}
	switch cfg.Format {
	case "ids", "tsv", "json":
	default:
		log.Warn().Str("format", cfg.Format).Msg("unknown format, using ids")
		cfg.Format = "ids"
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = DefaultConfig().RequestTimeoutSeconds
	}
}

// applyEnv overlays environment overrides onto cfg
func applyEnv(cfg *Config) {
	if v := os.Getenv("RECSEL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:               1,
		BaseURL:               "http://127.0.0.1:8390",
		PageSize:              DefaultPageSize,
		Format:                "ids",
		RequestTimeoutSeconds: 10,
		LogLevel:              "info",
		UISettings: UISettings{
			ShowLabels:       true,
			RememberPageSize: true,
		},
	}
}
