package config

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

const EnvPrefix = "ENVKIT"

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const DefaultPort = 3000

// Config holds the runtime settings of the binary. The validated application
// environment lives in package env; nothing here is exposed to it.
type Config struct {
	Host        string `mapstructure:"host"`
	DefaultPort int    `mapstructure:"default_port"`
	LogLevel    string `mapstructure:"log_level"`
	LogSource   bool   `mapstructure:"log_source"`
	NodeEnv     string `mapstructure:"node_env"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "")
	v.SetDefault("default_port", DefaultPort)
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("log_source", false)
	v.SetDefault("node_env", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// NODE_ENV is shared with the application and read without the prefix.
	if err := v.BindEnv("node_env", "NODE_ENV"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, is.Host),
		validation.Field(&c.DefaultPort,
			validation.Required,
			validation.Min(1),
			validation.Max(65535),
		),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
	)
}
