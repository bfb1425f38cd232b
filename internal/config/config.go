// Package config loads settings for the setcookie command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SETCOOKIE_LOG_LEVEL.
const EnvPrefix = "SETCOOKIE"

// Log holds logging settings.
type Log struct {
	Level  string
	Writer []string
	File   string
}

// SetDefaultConfig registers default values on v.
func SetDefaultConfig(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.writer", []string{"console"})
	v.SetDefault("log.file", "setcookie.log")

	v.SetDefault("output.format", "text")
}

// Load applies defaults and environment overrides to v and reads the
// config file. With an empty path it looks for setcookie.yaml in the
// working directory and /etc/setcookie/, and a missing file is not an
// error. An explicit path must exist.
func Load(v *viper.Viper, path string) error {
	SetDefaultConfig(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("setcookie")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/setcookie/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// LogSettings returns the logging section of v.
func LogSettings(v *viper.Viper) Log {
	return Log{
		Level:  v.GetString("log.level"),
		Writer: v.GetStringSlice("log.writer"),
		File:   v.GetString("log.file"),
	}
}

// Cookies returns the entries of the "cookies" list as untyped maps.
func Cookies(v *viper.Viper) ([]map[string]any, error) {
	raw := v.Get("cookies")
	if raw == nil {
		return nil, nil
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("cookies: %w", err)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("cookies[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
