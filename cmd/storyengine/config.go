package main

import (
	"os"

	"go.mau.fi/util/dbutil"
	"gopkg.in/yaml.v3"
)

// Config is the process's on-disk configuration, loaded the same way the
// teacher's bridge config is: a single YAML file parsed with yaml.v3.
type Config struct {
	Telegram struct {
		APIID      int    `yaml:"api_id"`
		APIHash    string `yaml:"api_hash"`
		SessionDir string `yaml:"session_dir"`
	} `yaml:"telegram"`

	Database dbutil.Config `yaml:"database"`

	LogLevel string `yaml:"log_level"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
