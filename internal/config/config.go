package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/artifactx/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyOutputDir  = "output_dir"
	KeyShell      = "shell"
	KeyLogLevel   = "log_level"
	KeyRunScripts = "run_scripts"
)

// Defaults for the known keys. An empty shell selects the platform default.
const (
	DefaultOutputDir = "test"
	DefaultLogLevel  = "warn"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyOutputDir, KeyShell, KeyLogLevel, KeyRunScripts}

// Dir returns the config directory. ARTIFACTX_HOME overrides ~/.artifactx/.
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

	viper.SetDefault(KeyOutputDir, DefaultOutputDir)
	viper.SetDefault(KeyShell, "")
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyRunScripts, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// OutputDir returns the directory steps are materialized into.
func OutputDir() string { return viper.GetString(KeyOutputDir) }

// Shell returns the configured shell, empty for the platform default.
func Shell() string { return viper.GetString(KeyShell) }

// LogLevel returns the configured log level.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// RunScripts reports whether RunScript steps are executed by default.
func RunScripts() bool { return viper.GetBool(KeyRunScripts) }

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
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
