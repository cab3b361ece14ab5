// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package config loads the configuration of the gid command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pion/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GID_"

var (
	errLoadFile     = errors.New("failed to load config file")
	errLoadEnv      = errors.New("failed to load environment")
	errLoadFlags    = errors.New("failed to load flags")
	errDecode       = errors.New("failed to decode config")
	errInvalid      = errors.New("invalid config")
	errUnknownLevel = errors.New("unknown log level")
)

// Config is the configuration of the gid command.
type Config struct {
	// LogLevel is one of disable, error, warn, info, debug or trace.
	LogLevel string `koanf:"log_level" validate:"oneof=disable error warn info debug trace"`

	// Upper selects uppercase hex output.
	Upper bool `koanf:"upper"`

	New NewConfig `koanf:"new"`
}

// NewConfig configures identifier generation.
type NewConfig struct {
	Kind   string `koanf:"kind" validate:"oneof=random sortable uuid4 uuid7 snowflake derive"`
	Count  int    `koanf:"count" validate:"min=1,max=1000000"`
	Format string `koanf:"format" validate:"oneof=base62 hex"`

	// Node is the snowflake node number.
	Node int64 `koanf:"node" validate:"min=0,max=1023"`

	// Key is the hex encoded derivation key, at most 64 bytes.
	Key string `koanf:"key" validate:"omitempty,hexadecimal,max=128"`

	// Name is the name to derive an identifier for. A derived identifier
	// depends only on Key and Name, so derive allows a Count of 1.
	Name string `koanf:"name" validate:"required_if=Kind derive"`
}

func validateNew(sl validator.StructLevel) {
	c, _ := sl.Current().Interface().(NewConfig)
	if c.Kind == "derive" && c.Count > 1 {
		sl.ReportError(c.Count, "Count", "Count", "derive_count", "")
	}
}

// Defaults returns the built-in configuration.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":  "warn",
		"upper":      false,
		"new.kind":   "random",
		"new.count":  1,
		"new.format": "base62",
		"new.node":   0,
		"new.key":    "",
		"new.name":   "",
	}
}

var envKeys = map[string]string{ //nolint:gochecknoglobals
	"log_level":  "log_level",
	"upper":      "upper",
	"new_kind":   "new.kind",
	"new_count":  "new.count",
	"new_format": "new.format",
	"new_node":   "new.node",
	"new_key":    "new.key",
	"new_name":   "new.name",
}

// Load builds a Config from, in increasing precedence, the defaults, the YAML
// file at path (skipped when empty), GID_ environment variables and
// overrides. Keys of overrides use the dotted koanf form, e.g. "new.kind".
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%w: %w", errDecode, err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w %s: %w", errLoadFile, path, err)
		}
	}

	// GID_NEW_KIND -> new.kind, unknown variables are ignored
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}), nil); err != nil {
		return nil, fmt.Errorf("%w: %w", errLoadEnv, err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("%w: %w", errLoadFlags, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errDecode, err)
	}

	validate := validator.New()
	validate.RegisterStructValidation(validateNew, NewConfig{})
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalid, err)
	}

	return &cfg, nil
}

// Level returns the logging level named by LogLevel.
func (c *Config) Level() (logging.LogLevel, error) {
	switch c.LogLevel {
	case "disable":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("%w: %q", errUnknownLevel, c.LogLevel)
	}
}
