package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Loader reads the configuration file.
type Loader struct {
	v         *viper.Viper
	validator *Validator
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	return &Loader{v: v, validator: validator}, nil
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file yields an empty Config. Environment overrides are applied
// by Resolve so their source can be reported.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := l.validator.ValidateBytes(expandedPath, data); err != nil {
		return nil, err
	}

	l.v.SetConfigFile(expandedPath)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
