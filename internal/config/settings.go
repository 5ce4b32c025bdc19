package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "onboard"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/onboard or $HOME/.config/onboard
//   - macOS: $HOME/.config/onboard (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\onboard
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return windowsAppDir()

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetDataDir returns the directory holding the storage slot.
//   - Linux/macOS: $XDG_DATA_HOME/onboard or $HOME/.local/share/onboard
//   - Windows: %LOCALAPPDATA%\onboard\data
func GetDataDir() (string, error) {
	if runtime.GOOS == "windows" {
		base, err := windowsAppDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "data"), nil
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", appName), nil
}

func windowsAppDir() (string, error) {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData != "" {
		return filepath.Join(localAppData, appName), nil
	}
	// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
	userProfile := os.Getenv("USERPROFILE")
	if userProfile == "" {
		return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
	}
	return filepath.Join(userProfile, "AppData", "Local", appName), nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads settings from path. A missing file yields defaults, and an
// empty data directory resolves to GetDataDir.
func Load(path string) (*Settings, error) {
	settings, err := loadSettingsFromFile(path)
	if err != nil {
		return nil, err
	}
	if settings.Storage.DataDir == "" {
		dataDir, err := GetDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get data directory: %w", err)
		}
		settings.Storage.DataDir = dataDir
	}
	return settings, nil
}

// LoadWithEnv reads settings from path and applies ONBOARD_* environment
// overrides on top.
func LoadWithEnv(path string) (*Settings, error) {
	settings, err := Load(path)
	if err != nil {
		return nil, err
	}

	overrides, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	settings.Apply(overrides)
	return settings, nil
}

// ParseEnv loads the ONBOARD_* environment variables.
func ParseEnv() (EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return overrides, nil
}

// loadSettingsFromFile performs the actual file loading.
func loadSettingsFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings, err := unmarshalSettings(data)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func unmarshalSettings(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Empty file decodes to version 0; treat it as current
	if settings.Version == 0 {
		settings.Version = CurrentVersion
	}
	if settings.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", settings.Version, CurrentVersion)
	}

	settings.fillDefaults()
	return &settings, nil
}

func marshalSettings(s *Settings, path string) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Onboard Configuration File
# Selects where the onboarding record is stored and how much is logged.
# Environment variables ONBOARD_STORE, ONBOARD_DATA_DIR, ONBOARD_DB_PATH,
# ONBOARD_KEY, ONBOARD_LOG_LEVEL and ONBOARD_LOG_FILE override these values.
#
# Location: ` + path + `

`)
	return append(header, data...), nil
}

// Save writes the settings to path.
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshalSettings(s, path)
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes a default configuration file to path unless one
// already exists. It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := NewSettings().Save(path); err != nil {
		return false, err
	}
	return true, nil
}
