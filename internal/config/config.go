package config

import "github.com/arlopurcell/ledgy/internal/constants"

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Database   DatabaseConfig `mapstructure:"database"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		API:      APIConfig{BaseURL: constants.DefaultAPIBaseURL},
		Database: DatabaseConfig{Path: ""},
	}
}
