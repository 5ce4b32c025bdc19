package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "onboard") {
		t.Errorf("GetConfigDir() = %v, should contain 'onboard'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "onboard"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetDataDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME does not apply on Windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error = %v", err)
	}
	if want := filepath.Join(dir, "onboard"); got != want {
		t.Errorf("GetDataDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != CurrentVersion {
		t.Errorf("NewSettings().Version = %v, want %v", s.Version, CurrentVersion)
	}
	if s.Storage == nil {
		t.Fatal("NewSettings().Storage should not be nil")
	}
	if s.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %v, want file", s.Storage.Backend)
	}
	if s.Storage.Key != DefaultStorageKey {
		t.Errorf("Storage.Key = %v, want %v", s.Storage.Key, DefaultStorageKey)
	}
	if s.Logging == nil || s.Logging.Level != "" {
		t.Error("NewSettings() should default to silent logging")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %v, want file", s.Storage.Backend)
	}
	if s.Storage.DataDir == "" {
		t.Error("Storage.DataDir should be resolved for a missing file")
	}
}

func TestSettingsSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := NewSettings()
	s.Storage.Backend = "sqlite"
	s.Storage.DataDir = "/var/lib/onboard"
	s.Storage.Key = "customKey"
	s.Logging.Level = "debug"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.HasPrefix(string(raw), "# Onboard Configuration File") {
		t.Error("Saved config should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should be renamed away after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %v, want sqlite", loaded.Storage.Backend)
	}
	if loaded.Storage.DataDir != "/var/lib/onboard" {
		t.Errorf("Storage.DataDir = %v, want /var/lib/onboard", loaded.Storage.DataDir)
	}
	if loaded.Storage.Key != "customKey" {
		t.Errorf("Storage.Key = %v, want customKey", loaded.Storage.Key)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", loaded.Logging.Level)
	}
}

func TestUnmarshalSettings(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantBackend string
		wantKey     string
	}{
		{"Empty file", "", false, "file", DefaultStorageKey},
		{"Version only", "version: 1\n", false, "file", DefaultStorageKey},
		{"Partial storage", "version: 1\nstorage:\n  backend: memory\n", false, "memory", DefaultStorageKey},
		{"Unsupported version", "version: 2\n", true, "", ""},
		{"Malformed YAML", "storage: [\n", true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := unmarshalSettings([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("unmarshalSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if s.Storage.Backend != tt.wantBackend {
				t.Errorf("Storage.Backend = %v, want %v", s.Storage.Backend, tt.wantBackend)
			}
			if s.Storage.Key != tt.wantKey {
				t.Errorf("Storage.Key = %v, want %v", s.Storage.Key, tt.wantKey)
			}
			if s.Logging == nil {
				t.Error("Logging should be initialized")
			}
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s := NewSettings()
	s.Storage.DataDir = "/from/file"
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv("ONBOARD_STORE", "sqlite")
	t.Setenv("ONBOARD_DB_PATH", "/tmp/onboard-test.db")
	t.Setenv("ONBOARD_LOG_LEVEL", "warn")

	loaded, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if loaded.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %v, want sqlite", loaded.Storage.Backend)
	}
	if loaded.Storage.DBPath != "/tmp/onboard-test.db" {
		t.Errorf("Storage.DBPath = %v, want /tmp/onboard-test.db", loaded.Storage.DBPath)
	}
	if loaded.Storage.DataDir != "/from/file" {
		t.Errorf("Storage.DataDir = %v, want value from file", loaded.Storage.DataDir)
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %v, want warn", loaded.Logging.Level)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	created, err := CreateDefaultConfig(path)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created {
		t.Error("CreateDefaultConfig() should create a missing file")
	}

	created, err = CreateDefaultConfig(path)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() second call error = %v", err)
	}
	if created {
		t.Error("CreateDefaultConfig() should not overwrite an existing file")
	}
}
