// ABOUTME: Layered configuration for catalog, quiz, transcript, bridge, and crawler settings
// ABOUTME: Merges built-in defaults, an optional YAML file, and MOVIEMATE_-prefixed env vars
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces every environment override, e.g. MOVIEMATE_CATALOG_PATH.
const EnvPrefix = "MOVIEMATE_"

// ConfigPathEnvVar points Load at an explicit config file, bypassing the search paths.
const ConfigPathEnvVar = "MOVIEMATE_CONFIG"

// DefaultConfigPaths are searched in order when MOVIEMATE_CONFIG is unset.
var DefaultConfigPaths = []string{
	"moviemate.yaml",
	"moviemate.yml",
	filepath.Join(xdg.ConfigHome, "moviemate", "config.yaml"),
}

// Config holds all runtime settings for the assistant.
type Config struct {
	Catalog     CatalogConfig     `koanf:"catalog"`
	Quiz        QuizConfig        `koanf:"quiz"`
	Transcripts TranscriptsConfig `koanf:"transcripts"`
	Bridge      BridgeConfig      `koanf:"bridge"`
	Crawl       CrawlConfig       `koanf:"crawl"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// CatalogConfig locates the media catalog CSV.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// QuizConfig locates the trivia question bank and the answer journal.
type QuizConfig struct {
	BankDir     string `koanf:"bank_dir"`
	JournalPath string `koanf:"journal_path"`
}

// TranscriptsConfig locates saved chat transcripts.
type TranscriptsConfig struct {
	Dir string `koanf:"dir"`
}

// BridgeConfig controls the file-based chat bridge.
type BridgeConfig struct {
	InputPath    string        `koanf:"input_path"`
	OutputPath   string        `koanf:"output_path"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

// CrawlConfig controls the catalog crawler.
type CrawlConfig struct {
	CacheDir string        `koanf:"cache_dir"`
	Delay    time.Duration `koanf:"delay"`
	Limit    int           `koanf:"limit"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults returns the built-in configuration. Repo-shipped data files are
// resolved relative to the working directory; user state lives under XDG dirs.
func Defaults() *Config {
	dataDir := filepath.Join(xdg.DataHome, "moviemate")
	return &Config{
		Catalog: CatalogConfig{
			Path: filepath.Join("data", "catalog.csv"),
		},
		Quiz: QuizConfig{
			BankDir:     filepath.Join("data", "questions"),
			JournalPath: filepath.Join(dataDir, "quiz_journal.csv"),
		},
		Transcripts: TranscriptsConfig{
			Dir: filepath.Join(dataDir, "transcripts"),
		},
		Bridge: BridgeConfig{
			InputPath:    filepath.Join(dataDir, "bridge", "from_user.txt"),
			OutputPath:   filepath.Join(dataDir, "bridge", "to_user.txt"),
			PollInterval: 500 * time.Millisecond,
		},
		Crawl: CrawlConfig{
			CacheDir: filepath.Join(xdg.CacheHome, "moviemate", "pages"),
			Delay:    time.Second,
			Limit:    0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration by layering, lowest priority first:
// built-in defaults, an optional YAML config file, and environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "" if none do.
// MOVIEMATE_CONFIG wins over the default search paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps MOVIEMATE_-prefixed environment variables to config
// paths. The first underscore after the prefix separates the section from the
// key, so MOVIEMATE_QUIZ_BANK_DIR becomes quiz.bank_dir. Variables without
// the prefix, and MOVIEMATE_CONFIG itself, are ignored.
func envTransformFunc(key string) string {
	if key == ConfigPathEnvVar || !strings.HasPrefix(key, EnvPrefix) {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks the configuration for values that would break at runtime.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	if c.Quiz.BankDir == "" {
		return fmt.Errorf("quiz.bank_dir must not be empty")
	}
	if c.Quiz.JournalPath == "" {
		return fmt.Errorf("quiz.journal_path must not be empty")
	}
	if c.Bridge.PollInterval < 10*time.Millisecond {
		return fmt.Errorf("bridge.poll_interval must be at least 10ms, got %v", c.Bridge.PollInterval)
	}
	if c.Crawl.Delay < 0 {
		return fmt.Errorf("crawl.delay must not be negative, got %v", c.Crawl.Delay)
	}
	if c.Crawl.Limit < 0 {
		return fmt.Errorf("crawl.limit must not be negative, got %d", c.Crawl.Limit)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
