package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "REPORTGEN"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Config is the application configuration shared by the cli and web binaries.
type Config struct {
	LogLevel      string       `mapstructure:"log_level"`
	DefaultFormat string       `mapstructure:"default_format"`
	PresetCatalog string       `mapstructure:"preset_catalog"`
	Server        ServerConfig `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("default_format", "pdf")
	v.SetDefault("preset_catalog", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
}

// LoadConfig reads the configuration file at path, if any, and applies REPORTGEN_*
// environment overrides. A missing file yields defaults plus environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	return &cfg, nil
}
