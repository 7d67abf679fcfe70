// Package config resolves settings from defaults, a .todo.yaml file, TODO_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todomvc/internal/store"
)

// Backends understood by the application.
const (
	BackendDiskv  = "diskv"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Key     string `yaml:"key"`
	Theme   string `yaml:"theme"`
	Log     Log    `yaml:"log"`
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Defaults registers every setting so env lookups and Unmarshal see them.
func Defaults(v *viper.Viper) {
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("path", "~/.todo.db")
	v.SetDefault("key", store.DefaultKey)
	v.SetDefault("theme", "classic")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load reads the configuration into a Config. A missing .todo.yaml is fine; a
// malformed one is not.
func Load(v *viper.Viper) (Config, error) {
	Defaults(v)
	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Backend: strings.ToLower(v.GetString("backend")),
		Path:    v.GetString("path"),
		Key:     v.GetString("key"),
		Theme:   strings.ToLower(v.GetString("theme")),
		Log: Log{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}
	var err error
	if cfg.Path, err = homedir.Expand(cfg.Path); err != nil {
		return Config{}, fmt.Errorf("expand path: %w", err)
	}
	if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
		return Config{}, fmt.Errorf("expand log file: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendDiskv, BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if c.Backend != BackendMemory && c.Path == "" {
		return fmt.Errorf("%w: path required for %s backend", ErrInvalid, c.Backend)
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalid)
	}
	return nil
}
