package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	Storage        string `mapstructure:"STORAGE"`
	DataDir        string `mapstructure:"DATA_DIR"`
	Profile        string `mapstructure:"PROFILE"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32  `mapstructure:"DB_MIN_CONNS"`
	DictionaryPath string `mapstructure:"DICTIONARY_PATH"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
}

var keys = []string{
	"STORAGE", "DATA_DIR", "PROFILE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"DICTIONARY_PATH", "LOG_LEVEL", "LOG_FORMAT",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("STORAGE", "file")
	v.SetDefault("DATA_DIR", defaultDataDir())
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DB_MAX_CONNS", 4)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	for _, k := range keys {
		v.BindEnv(k)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WordFiles returns the comma separated DICTIONARY_PATH entries.
func (c *Config) WordFiles() []string {
	var out []string
	for _, p := range strings.Split(c.DictionaryPath, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "medspell")
	}
	return ".medspell"
}

// Validate checks the settings required by the selected storage backend.
func (c *Config) Validate() error {
	switch c.Storage {
	case "file", "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORAGE is \"redis\"")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE is \"postgres\"")
		}
	default:
		return fmt.Errorf("STORAGE must be \"file\", \"redis\", \"postgres\" or \"memory\", got %q", c.Storage)
	}
	return nil
}

func (c *Config) UserDictPath() string { return filepath.Join(c.DataDir, c.Profile, "userdict.json") }

func (c *Config) SettingsPath() string { return filepath.Join(c.DataDir, c.Profile, "settings.yaml") }

// ResolveProfile fills Profile when unset, reusing the id kept in
// DATA_DIR/profile or generating a new one.
func (c *Config) ResolveProfile() error {
	if c.Profile != "" {
		return nil
	}
	path := filepath.Join(c.DataDir, "profile")
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			c.Profile = id
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read profile id: %w", err)
	}

	c.Profile = uuid.NewString()
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.Profile+"\n"), 0o644); err != nil {
		return fmt.Errorf("write profile id: %w", err)
	}
	return nil
}
