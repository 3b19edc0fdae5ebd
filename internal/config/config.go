// Package config loads service configuration from a yaml file, with
// embedded defaults for first runs and environment-variable overrides
// for the provider API keys.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// ProviderConfig holds the credentials and enable flag for one upstream.
type ProviderConfig struct {
	Enabled bool     `yaml:"enabled"`
	APIKey  string   `yaml:"api_key,omitempty"`
	APIKeys []string `yaml:"api_keys,omitempty"`
}

// RedisConfig selects the optional Redis cache backend. An empty
// address keeps the default in-memory cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the full service configuration.
type Config struct {
	Listen         string `yaml:"listen"`
	CacheTTL       string `yaml:"cache_ttl"`
	FetchTimeout   string `yaml:"fetch_timeout"`
	RequestBudget  string `yaml:"request_budget"`
	Fallback       bool   `yaml:"fallback"`
	DefaultCountry string `yaml:"default_country"`
	Archive        bool   `yaml:"archive"`
	Retention      string `yaml:"retention"`

	Providers struct {
		NewsData   ProviderConfig `yaml:"newsdata"`
		TheNewsAPI ProviderConfig `yaml:"thenewsapi"`
		Mediastack ProviderConfig `yaml:"mediastack"`
		NYTimes    ProviderConfig `yaml:"nytimes"`
		RSS        ProviderConfig `yaml:"rss"`
	} `yaml:"providers"`

	Redis RedisConfig `yaml:"redis"`
}

// CacheTTLDuration parses the cache TTL, defaulting to 15 minutes.
func (c *Config) CacheTTLDuration() time.Duration {
	return parseDuration(c.CacheTTL, 15*time.Minute)
}

// FetchTimeoutDuration parses the per-source timeout, defaulting to 15s.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return parseDuration(c.FetchTimeout, 15*time.Second)
}

// RequestBudgetDuration parses the overall fan-out budget, defaulting
// to 45 seconds.
func (c *Config) RequestBudgetDuration() time.Duration {
	return parseDuration(c.RequestBudget, 45*time.Second)
}

// RetentionDuration parses the archive retention, supporting the "Nd"
// day syntax. Defaults to 30 days.
func (c *Config) RetentionDuration() time.Duration {
	fallback := 30 * 24 * time.Hour
	if c.Retention == "" {
		return fallback
	}
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	return parseDuration(c.Retention, fallback)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "dailynews", "config.yaml")
}

// ArchivePath returns the sqlite archive location.
func ArchivePath() string {
	return filepath.Join(xdg.CacheHome, "dailynews", "archive.db")
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

// Load reads the config file at path (or the default location), writing
// the embedded defaults on first run. A .env file in the working
// directory is honored, and API keys from the environment override the
// file so secrets can stay out of it.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

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
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				applyEnv(defaults)
				return defaults, nil
			}
			applyEnv(defaults)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyEnv(&cfg)

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

// applyEnv overlays API keys and the redis address from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NEWSDATA_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.Providers.NewsData.APIKeys = keys
	}
	if v := os.Getenv("THENEWSAPI_KEY"); v != "" {
		cfg.Providers.TheNewsAPI.APIKey = v
	}
	if v := os.Getenv("MEDIASTACK_KEY"); v != "" {
		cfg.Providers.Mediastack.APIKey = v
	}
	if v := os.Getenv("NYTIMES_KEY"); v != "" {
		cfg.Providers.NYTimes.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

func validate(cfg *Config) error {
	if cfg.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"cache_ttl", cfg.CacheTTL},
		{"fetch_timeout", cfg.FetchTimeout},
		{"request_budget", cfg.RequestBudget},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.ParseDuration(field.value); err != nil {
			return fmt.Errorf("%s: invalid duration %q", field.name, field.value)
		}
	}
	return nil
}
