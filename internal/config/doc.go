// Package config provides user configuration management for onboard.
//
// This package manages a YAML-based configuration file that selects the
// storage backend holding the onboarding record and the logging output. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/onboard/config.yaml or $HOME/.config/onboard/config.yaml
//   - macOS: $HOME/.config/onboard/config.yaml
//   - Windows: %LOCALAPPDATA%\onboard\config.yaml
//
// # Precedence
//
// Values are resolved in this order, later wins:
//
//  1. Built-in defaults (file backend, key "onboardingData", silent logging)
//  2. config.yaml
//  3. ONBOARD_* environment variables
//  4. Command-line flags (applied by cmd/onboard)
//
// # Usage Example
//
//	path, err := config.GetConfigPath()
//	if err != nil {
//	    return err
//	}
//	settings, err := config.LoadWithEnv(path)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(settings.Storage.Backend, settings.Storage.DataDir)
//
// # Thread Safety
//
// Save is protected by a mutex and writes through a temporary file that is
// renamed into place.
package config
