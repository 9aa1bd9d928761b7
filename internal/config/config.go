package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// EmbeddingsConfig configures the OpenAI embeddings backend used for
// semantic title classification.
type EmbeddingsConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key"`
}

type HistoryConfig struct {
	Enabled   *bool  `yaml:"enabled"`
	Retention string `yaml:"retention"`
}

type Config struct {
	AI         *AIConfig         `yaml:"ai,omitempty"`
	Embeddings *EmbeddingsConfig `yaml:"embeddings,omitempty"`
	YouTube    *YouTubeConfig    `yaml:"youtube,omitempty"`
	History    HistoryConfig     `yaml:"history"`
}

// AIEnabled returns true if an AI provider is configured with a key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the resolved chat-model API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("YTDIET_AI_KEY")
}

// EmbeddingKey resolves the key for the embeddings backend. Falls back
// to the AI key when that provider is openai, then to the environment.
func (c *Config) EmbeddingKey() string {
	if c.Embeddings != nil && c.Embeddings.APIKey != "" {
		return c.Embeddings.APIKey
	}
	if c.AI != nil && c.AI.Provider == "openai" && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if key := os.Getenv("YTDIET_OPENAI_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}

// EmbeddingModel returns the configured embeddings model, empty means
// the backend default.
func (c *Config) EmbeddingModel() string {
	if c.Embeddings != nil {
		return c.Embeddings.Model
	}
	return ""
}

// YouTubeKey returns the resolved Data API key (config or env var).
func (c *Config) YouTubeKey() string {
	if c.YouTube != nil && c.YouTube.APIKey != "" {
		return c.YouTube.APIKey
	}
	return os.Getenv("YTDIET_YOUTUBE_KEY")
}

// HistoryEnabled defaults to true when unset.
func (c *Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}

func (c *Config) RetentionDuration() time.Duration {
	if c.History.Retention == "" {
		return 90 * 24 * time.Hour
	}
	// Support "Nd" day syntax
	r := c.History.Retention
	if len(r) > 1 && r[len(r)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(r, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(r)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "ytdiet", "config.yaml")
}

func HistoryPath() string {
	return filepath.Join(xdg.DataHome, "ytdiet", "history.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "claude", "openai":
		default:
			return fmt.Errorf("ai provider %q is not supported (valid: claude, openai)", cfg.AI.Provider)
		}
	}
	if cfg.History.Retention != "" {
		r := cfg.History.Retention
		if len(r) > 1 && r[len(r)-1] == 'd' {
			var days int
			if _, err := fmt.Sscanf(r, "%dd", &days); err == nil {
				return nil
			}
		}
		if _, err := time.ParseDuration(r); err != nil {
			return fmt.Errorf("history retention %q is not a duration", r)
		}
	}
	return nil
}
