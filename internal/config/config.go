package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentx-labs/autolaunch/internal/branding"
	"github.com/agentx-labs/autolaunch/internal/launcher"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyScope         = "scope"
	KeyEngineWindows = "engine.windows"
	KeyEngineLinux   = "engine.linux"
	KeyEngineMacOS   = "engine.macos"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
)

// Keys lists every setting in display order.
var Keys = []string{KeyScope, KeyEngineWindows, KeyEngineLinux, KeyEngineMacOS, KeyLogLevel, KeyLogFormat}

// HomeEnv overrides the config directory.
var HomeEnv = branding.EnvVar("HOME")

// Settings is the decoded configuration.
type Settings struct {
	Scope   launcher.WorkScope
	Engines launcher.Engines
	Log     LogSettings
}

// LogSettings selects the slog handler.
type LogSettings struct {
	Level  string
	Format string
}

// Dir returns the config directory (~/.autolaunch/ unless overridden).
func Dir() string {
	if v := os.Getenv(HomeEnv); v != "" {
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

// LoadEnvFile adds the variables in a dotenv file to the process
// environment. Variables already set win. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := launcher.DefaultEngines()
	viper.SetDefault(KeyScope, string(launcher.CurrentUser))
	viper.SetDefault(KeyEngineWindows, string(defaults.Windows))
	viper.SetDefault(KeyEngineLinux, string(defaults.Linux))
	viper.SetDefault(KeyEngineMacOS, string(defaults.MacOS))
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "text")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Read decodes the loaded configuration, rejecting unknown scope or engine
// names.
func Read() (Settings, error) {
	var s Settings
	var err error
	if s.Scope, err = launcher.ParseWorkScope(viper.GetString(KeyScope)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyScope, err)
	}
	if s.Engines.Windows, err = launcher.ParseWindowsEngine(viper.GetString(KeyEngineWindows)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyEngineWindows, err)
	}
	if s.Engines.Linux, err = launcher.ParseLinuxEngine(viper.GetString(KeyEngineLinux)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyEngineLinux, err)
	}
	if s.Engines.MacOS, err = launcher.ParseMacOSEngine(viper.GetString(KeyEngineMacOS)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyEngineMacOS, err)
	}
	s.Log = LogSettings{
		Level:  viper.GetString(KeyLogLevel),
		Format: viper.GetString(KeyLogFormat),
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair, then saves the file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func validate(key, value string) error {
	var err error
	switch key {
	case KeyScope:
		_, err = launcher.ParseWorkScope(value)
	case KeyEngineWindows:
		_, err = launcher.ParseWindowsEngine(value)
	case KeyEngineLinux:
		_, err = launcher.ParseLinuxEngine(value)
	case KeyEngineMacOS:
		_, err = launcher.ParseMacOSEngine(value)
	case KeyLogFormat:
		if value != "text" && value != "json" {
			err = fmt.Errorf("unknown log format %q: want text or json", value)
		}
	}
	return err
}
