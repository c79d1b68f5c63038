package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Brownie44l1/reqline/internal/logging"
	"github.com/Brownie44l1/reqline/internal/server"
)

// EnvPrefix is prepended to every environment override,
// e.g. REQLINE_SERVER_ADDR or REQLINE_LOG_LEVEL.
const EnvPrefix = "REQLINE"

var (
	ErrEmptyAddr         = errors.New("server.addr must not be empty")
	ErrInvalidBufferSize = errors.New("server.buffer_size must be positive")
)

type Config struct {
	Server server.Config  `mapstructure:"server"`
	Log    logging.Config `mapstructure:"log"`
}

// Loader reads configuration from defaults, an optional file and the
// environment, in increasing order of precedence.
type Loader struct {
	v *viper.Viper
}

func NewLoader(path string) *Loader {
	v := viper.New()

	srv := server.DefaultConfig()
	v.SetDefault("server.addr", srv.Addr)
	v.SetDefault("server.buffer_size", srv.BufferSize)

	lg := logging.DefaultConfig()
	v.SetDefault("log.level", lg.Level)
	v.SetDefault("log.format", lg.Format)
	v.SetDefault("log.file", lg.File)
	v.SetDefault("log.max_size_mb", lg.MaxSizeMB)
	v.SetDefault("log.max_backups", lg.MaxBackups)
	v.SetDefault("log.max_age_days", lg.MaxAgeDays)
	v.SetDefault("log.compress", lg.Compress)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	}

	return &Loader{v: v}
}

// Load is NewLoader(path).Load().
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}

func (l *Loader) Load() (*Config, error) {
	if l.v.ConfigFileUsed() != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch calls fn with the reloaded configuration every time the config
// file changes. Invalid edits are passed to onErr and otherwise ignored.
// Without a config file Watch does nothing.
func (l *Loader) Watch(fn func(*Config), onErr func(error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		fn(cfg)
	})
	l.v.WatchConfig()
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrEmptyAddr
	}
	if c.Server.BufferSize <= 0 {
		return ErrInvalidBufferSize
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
