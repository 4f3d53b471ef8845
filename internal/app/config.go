package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config and data directories.
	AppName = "modthree"
	// EnvPrefix prefixes every environment override, e.g. MODTHREE_LOG_LEVEL.
	EnvPrefix = "MODTHREE"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
)

// LogConfig selects logger verbosity and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json, logfmt
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string    `mapstructure:"home"` // data directory, e.g. $HOME/.modthree
	Log  LogConfig `mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	home := ".modthree"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".modthree")
	}
	return Config{
		Home: home,
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// DefinitionsDir is where stored automaton definitions live.
func (c Config) DefinitionsDir() string {
	return filepath.Join(c.Home, "definitions")
}

// ConfigDir returns $XDG_CONFIG_HOME/modthree, falling back to
// ~/.config/modthree.
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// LoadConfig layers defaults, the config file and the environment. When path
// is empty the default config directory is searched and a missing file is not
// an error; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("home", defaults.Home)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("toml")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("load config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home must not be empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := parseFormatter(c.Log.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
