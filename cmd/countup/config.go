package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/emmabritton/countup/internal/countup"
)

// appConfig holds the widget tunables.
type appConfig struct {
	TickRate       int     `mapstructure:"tick-rate"`
	SecondsPerYear float64 `mapstructure:"seconds-per-year"`
	Theme          string  `mapstructure:"theme"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("COUNTUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("tick-rate", countup.DefaultTickRate)
	v.SetDefault("seconds-per-year", countup.DefaultSecondsPerYear)
	v.SetDefault("theme", countup.DefaultTheme)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "countup", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
