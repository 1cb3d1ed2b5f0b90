// Package config provides unified configuration management for signdeck.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → local file → CLI flags
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/signdeck/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Duration bounds for a practice session, in seconds.
const (
	MinDuration = 3
	MaxDuration = 30
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// PracticeConfig holds the defaults offered when a session starts.
type PracticeConfig struct {
	Duration int  `yaml:"duration"`
	Random   bool `yaml:"random"`

	// Set tracking for merge
	DurationSet bool `yaml:"-"`
	RandomSet   bool `yaml:"-"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	DBSet bool `yaml:"-"`
}

// StorageConfig selects and configures the slot the word lists live in.
type StorageConfig struct {
	Backend string      `yaml:"backend"`
	Key     string      `yaml:"key"`
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

// Config holds all configuration settings for signdeck.
// Fields ending in *Set track whether that field was explicitly set in config,
// so a local file can override a global one with a zero value.
type Config struct {
	Practice PracticeConfig `yaml:"practice"`
	Storage  StorageConfig  `yaml:"storage"`
	LogsDir  string         `yaml:"logs_dir"`
	Seed     uint64         `yaml:"seed"`

	SeedSet bool `yaml:"-"`

	configDir string
	localDir  string
	sources   []string
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// LocalDir returns the local project config directory if one was detected.
func (c *Config) LocalDir() string {
	return c.localDir
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Load loads all configuration from the default locations.
// It auto-detects .signdeck/ in the current working directory for local overrides.
func Load() (*Config, error) {
	globalDir := dirs.ConfigDir()

	var localDir string
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, ".signdeck")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			localDir = candidate
		}
	}

	return LoadWithDirs(globalDir, localDir)
}

// LoadWithDirs loads configuration with explicit global and local directories.
// If localDir is empty, only global config is used.
func LoadWithDirs(globalDir, localDir string) (*Config, error) {
	if err := InstallDefaults(globalDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	cfg.applyEnv()

	if localDir != "" {
		localPath := filepath.Join(localDir, "config.yaml")
		if localCfg, err := loadFile(localPath); err == nil {
			cfg.mergeFrom(localCfg)
			cfg.sources = append(cfg.sources, localPath)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load local config: %w", err)
		}
	}

	cfg.configDir = globalDir
	cfg.localDir = localDir

	return cfg, nil
}

// InstallDefaults creates the config directory and installs default config if not exists.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	if c.Practice.Duration < MinDuration || c.Practice.Duration > MaxDuration {
		return fmt.Errorf("practice.duration must be between %d and %d, got %d", MinDuration, MaxDuration, c.Practice.Duration)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("storage.backend %q is not one of file, sqlite, redis, memory", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	if c.Storage.Backend == BackendRedis && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("storage.redis.addr is required for the redis backend")
	}
	return nil
}

// ResolvedLogsDir returns the journal directory, falling back to the state dir.
func (c *Config) ResolvedLogsDir() string {
	if c.LogsDir != "" {
		return c.LogsDir
	}
	return dirs.LogsDir()
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if _, ok := raw["seed"]; ok {
		cfg.SeedSet = true
	}

	if practice, ok := raw["practice"].(map[string]any); ok {
		if _, ok := practice["duration"]; ok {
			cfg.Practice.DurationSet = true
		}
		if _, ok := practice["random"]; ok {
			cfg.Practice.RandomSet = true
		}
	}

	if storage, ok := raw["storage"].(map[string]any); ok {
		if redis, ok := storage["redis"].(map[string]any); ok {
			if _, ok := redis["db"]; ok {
				cfg.Storage.Redis.DBSet = true
			}
		}
	}

	return cfg, nil
}

// applyEnv applies environment variables to the config.
// Env vars sit between global and local config in precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("SIGNDECK_DURATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Practice.Duration = n
			c.Practice.DurationSet = true
			c.sources = append(c.sources, "env:SIGNDECK_DURATION")
		}
	}

	if v := os.Getenv("SIGNDECK_RANDOM"); v != "" {
		c.Practice.Random = v == "true" || v == "1"
		c.Practice.RandomSet = true
		c.sources = append(c.sources, "env:SIGNDECK_RANDOM")
	}

	if v := os.Getenv("SIGNDECK_STORAGE"); v != "" {
		c.Storage.Backend = v
		c.sources = append(c.sources, "env:SIGNDECK_STORAGE")
	}

	if v := os.Getenv("SIGNDECK_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
		c.sources = append(c.sources, "env:SIGNDECK_STORAGE_PATH")
	}

	if v := os.Getenv("SIGNDECK_REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
		c.sources = append(c.sources, "env:SIGNDECK_REDIS_ADDR")
	}

	if v := os.Getenv("SIGNDECK_REDIS_PASSWORD"); v != "" {
		c.Storage.Redis.Password = v
		c.sources = append(c.sources, "env:SIGNDECK_REDIS_PASSWORD")
	}

	if v := os.Getenv("SIGNDECK_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
			c.SeedSet = true
			c.sources = append(c.sources, "env:SIGNDECK_SEED")
		}
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Practice.DurationSet {
		c.Practice.Duration = src.Practice.Duration
		c.Practice.DurationSet = true
	}
	if src.Practice.RandomSet {
		c.Practice.Random = src.Practice.Random
		c.Practice.RandomSet = true
	}
	if src.SeedSet {
		c.Seed = src.Seed
		c.SeedSet = true
	}
	if src.LogsDir != "" {
		c.LogsDir = src.LogsDir
	}

	if src.Storage.Backend != "" {
		c.Storage.Backend = src.Storage.Backend
	}
	if src.Storage.Key != "" {
		c.Storage.Key = src.Storage.Key
	}
	if src.Storage.Path != "" {
		c.Storage.Path = src.Storage.Path
	}
	if src.Storage.Redis.Addr != "" {
		c.Storage.Redis.Addr = src.Storage.Redis.Addr
	}
	if src.Storage.Redis.Password != "" {
		c.Storage.Redis.Password = src.Storage.Redis.Password
	}
	if src.Storage.Redis.DBSet {
		c.Storage.Redis.DB = src.Storage.Redis.DB
		c.Storage.Redis.DBSet = true
	}
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence; zero values mean "not given".
func (c *Config) ApplyCLIFlags(duration int, backend string) {
	if duration > 0 {
		c.Practice.Duration = duration
		c.Practice.DurationSet = true
		c.sources = append(c.sources, "cli:duration")
	}
	if backend != "" {
		c.Storage.Backend = backend
		c.sources = append(c.sources, "cli:storage")
	}
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
