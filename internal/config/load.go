package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvConfig holds the whole configuration as a JSON document.
	EnvConfig = "config"
	// EnvConfigFile overrides the default config file path.
	EnvConfigFile = "config_file"
)

var ErrNoConfig = errors.New("no configuration found")

var validate = validator.New()

// DefaultPath is where a service looks for its JSON config file when
// neither environment variable is set.
func DefaultPath(service string) string {
	return filepath.Join("config", service+".json")
}

// Load fills out (a pointer to Overseer, Guardian or Pioneer) from the
// $config JSON blob, falling back to a JSON file on disk.
func Load(service string, out any) error {
	v := viper.New()
	v.SetConfigType("json")

	if blob := os.Getenv(EnvConfig); blob != "" {
		if err := v.ReadConfig(strings.NewReader(blob)); err != nil {
			return fmt.Errorf("parse $%s for %s service: %w", EnvConfig, service, err)
		}
	} else {
		path := os.Getenv(EnvConfigFile)
		if path == "" {
			path = DefaultPath(service)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
				return fmt.Errorf("%w for %s service: %s", ErrNoConfig, service, path)
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("decode %s config: %w", service, err)
	}
	if d, ok := out.(interface{ setDefaults() }); ok {
		d.setDefaults()
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid %s config: %w", service, err)
	}
	return nil
}
