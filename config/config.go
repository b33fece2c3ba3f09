/*
Package config loads the configuration of trema applications.

Configuration is read from a YAML file (default "trema.yaml" in the current
directory) and from environment variables prefixed with TREMA_, e.g.

    TREMA_MAX_WIDGET_AGE=20

A configuration file may look like this:

    root_tag: App
    max_widget_age: 10
    max_substitutions: 100
    input_buffer_size: 256
    default_window_height: 200
    trace_level: Info
    tracing:
      adapter: go
    tracelevel:
      trema:
        render: Debug

Trace levels given in section "tracelevel" take precedence over trace_level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/trema/markup"
	"github.com/spf13/viper"
)

// Config holds the settings of a renderer.
type Config struct {
	RootTag             string  `mapstructure:"root_tag"`
	MaxWidgetAge        int     `mapstructure:"max_widget_age"`
	MaxSubstitutions    int     `mapstructure:"max_substitutions"`
	InputBufferSize     int     `mapstructure:"input_buffer_size"`
	DefaultWindowHeight float64 `mapstructure:"default_window_height"`
	TraceLevel          string  `mapstructure:"trace_level"`

	v *viper.Viper
}

// SetDefaults registers the default values with a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root_tag", markup.DefaultRootTag)
	v.SetDefault("max_widget_age", 10)
	v.SetDefault("max_substitutions", 100)
	v.SetDefault("input_buffer_size", 256)
	v.SetDefault("default_window_height", 200.0)
	v.SetDefault("trace_level", "Error")
	v.SetDefault("tracing.adapter", "go")
}

// Default returns the default configuration.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	c, err := FromViper(v)
	if err != nil { // defaults are valid
		panic(err)
	}
	return c
}

// Load reads the configuration from a YAML file and from the environment.
// If path is empty, "trema.yaml" is searched for in the current directory;
// a missing file is not an error in this case.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("trema")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("TREMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: cannot read configuration: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates a configuration from a viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: error unmarshaling configuration: %w", err)
	}
	c.v = v
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks a configuration for values out of range.
func (c *Config) Validate() error {
	switch {
	case c.RootTag == "":
		return errors.New("config: root_tag must not be empty")
	case c.MaxWidgetAge <= 0:
		return fmt.Errorf("config: max_widget_age must be positive, is %d", c.MaxWidgetAge)
	case c.MaxSubstitutions <= 0:
		return fmt.Errorf("config: max_substitutions must be positive, is %d", c.MaxSubstitutions)
	case c.InputBufferSize < 2:
		return fmt.Errorf("config: input_buffer_size must be at least 2, is %d", c.InputBufferSize)
	case c.DefaultWindowHeight <= 0:
		return fmt.Errorf("config: default_window_height must be positive, is %g", c.DefaultWindowHeight)
	}
	return nil
}

// Viper returns the viper instance a configuration has been loaded from.
func (c *Config) Viper() *viper.Viper {
	if c.v == nil {
		c.v = viper.New()
		SetDefaults(c.v)
	}
	return c.v
}
