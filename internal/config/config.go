package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const appName = "basket"

// GetBasketDir resolves the base directory for all basket data. BASKET_DIR
// wins, then the XDG data home, then ~/.local/share.
func GetBasketDir() string {
	if explicit := os.Getenv("BASKET_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appName)
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, appName)
}

// GetDBPath returns the path to the SQLite database file.
func GetDBPath() string {
	return filepath.Join(GetBasketDir(), "basket.db")
}

// GetBackupsDir returns the directory that holds exported snapshots.
func GetBackupsDir() string {
	return filepath.Join(GetBasketDir(), "backups")
}

// GetConfigDir returns the directory searched for config.yaml.
func GetConfigDir() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appName)
}

// Logging selects the slog handler installed by the CLI.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Log Logging `mapstructure:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: Logging{Level: "info", Format: "text"},
	}
}

// Load reads config.yaml from the working directory or the config dir, then
// applies BASKET_* environment overrides (BASKET_LOG_LEVEL, BASKET_LOG_FORMAT).
// A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(GetConfigDir())

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	v.SetEnvPrefix("BASKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format: %s (valid values: text, json)", cfg.Log.Format)
	}

	return cfg, nil
}
