package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/phoenix-kits/phoenix-kits/internal/branding"
	"github.com/phoenix-kits/phoenix-kits/internal/logging"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyTemplatesDir    = "templates_dir"
	KeyPhoenixEndpoint = "phoenix_endpoint"
	KeyLogLevel        = "log_level"
)

// DefaultPhoenixEndpoint is the OTLP trace endpoint of a local Phoenix server.
const DefaultPhoenixEndpoint = "http://127.0.0.1:6006/v1/traces"

var defaultValues = map[string]string{
	KeyTemplatesDir:    "",
	KeyPhoenixEndpoint: DefaultPhoenixEndpoint,
	KeyLogLevel:        "warn",
}

// validators check a value before Set persists it.
var validators = map[string]func(string) error{
	KeyLogLevel: func(v string) error {
		_, err := logging.ParseLevel(v)
		return err
	},
}

// Dir returns the path to the config directory (~/.phoenix-kits/).
// The PHOENIX_KITS_HOME environment variable takes precedence.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is one of the documented settings.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// TemplatesDir returns the configured template override directory, or "" to
// use the templates bundled with the binary.
func TemplatesDir() string { return Get(KeyTemplatesDir) }

// PhoenixEndpoint returns the trace endpoint written into generated projects.
func PhoenixEndpoint() string { return Get(KeyPhoenixEndpoint) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if validate, ok := validators[key]; ok {
		if err := validate(value); err != nil {
			return err
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
