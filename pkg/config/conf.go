// Package config reads and writes the app config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	appDirName     = ".modelrep"
	dirMode        = 0700
	fileMode       = 0600
)

// Config represents the app config object.
type Config struct {
	Workers    int    `yaml:"workers"`
	Format     string `yaml:"format"`
	UseLLM     bool   `yaml:"useLLM"`
	GenAIURL   string `yaml:"genAIURL,omitempty"`
	GenAIModel string `yaml:"genAIModel,omitempty"`
	LogLevel   string `yaml:"logLevel"`
}

func getDefaultConfig() *Config {
	return &Config{
		Workers:  4,
		Format:   "text",
		UseLLM:   false,
		LogLevel: "info",
	}
}

// Save writes the config into the given directory.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads the app config from a directory, creating the directory
// and a default config when either is missing.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	return &c, nil
}

// HomeDir returns the app's home directory, creating it when missing.
// Falls back to the current directory when the user home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dirPath := filepath.Join(home, appDirName)
	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			return home
		}
	}
	return dirPath
}
