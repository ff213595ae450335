package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/makegen-labs/makegen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized settings keys.
const (
	KeyTemplate = "template"
	KeyOutput   = "output"
)

// Built-in paths used when neither a flag nor a setting names one.
const (
	DefaultTemplate = "Makefile.tmp"
	DefaultOutput   = "Makefile"
)

// Dir returns the path to the config directory. MAKEGEN_HOME overrides the
// default of ~/.makegen/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.makegen/config.yaml).
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

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
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

// TemplatePath picks the template path: the flag value, else the "template"
// setting, else Makefile.tmp.
func TemplatePath(flag string) string {
	return pick(flag, KeyTemplate, DefaultTemplate)
}

// OutputPath picks the output path: the flag value, else the "output"
// setting, else Makefile.
func OutputPath(flag string) string {
	return pick(flag, KeyOutput, DefaultOutput)
}

func pick(flag, key, fallback string) string {
	if flag != "" {
		return flag
	}
	if v := Get(key); v != "" {
		return v
	}
	return fallback
}
