package config

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version int              `yaml:"version"`
	Storage *StorageSettings `yaml:"storage,omitempty"`
	Logging *LoggingSettings `yaml:"logging,omitempty"`
}

// StorageSettings selects where the onboarding record is kept.
type StorageSettings struct {
	Backend string `yaml:"backend"`            // file, sqlite or memory
	DataDir string `yaml:"data_dir,omitempty"` // Directory for the file backend and the default sqlite database
	DBPath  string `yaml:"db_path,omitempty"`  // Explicit sqlite database file
	Key     string `yaml:"key,omitempty"`      // Storage slot key
}

// LoggingSettings controls diagnostic output. Logging is silent when Level
// is empty.
type LoggingSettings struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// EnvOverrides are environment variables that take precedence over the
// settings file.
type EnvOverrides struct {
	Store    string `env:"ONBOARD_STORE"`
	DataDir  string `env:"ONBOARD_DATA_DIR"`
	DBPath   string `env:"ONBOARD_DB_PATH"`
	Key      string `env:"ONBOARD_KEY"`
	LogLevel string `env:"ONBOARD_LOG_LEVEL"`
	LogFile  string `env:"ONBOARD_LOG_FILE"`
}

// DefaultStorageKey is the slot key used when none is configured.
const DefaultStorageKey = "onboardingData"

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Storage: &StorageSettings{
			Backend: "file",
			Key:     DefaultStorageKey,
		},
		Logging: &LoggingSettings{},
	}
}

// fillDefaults initializes sections missing from a loaded file.
func (s *Settings) fillDefaults() {
	def := NewSettings()
	if s.Storage == nil {
		s.Storage = def.Storage
	}
	if s.Storage.Backend == "" {
		s.Storage.Backend = def.Storage.Backend
	}
	if s.Storage.Key == "" {
		s.Storage.Key = def.Storage.Key
	}
	if s.Logging == nil {
		s.Logging = def.Logging
	}
}

// Apply overlays non-empty environment values onto s.
func (s *Settings) Apply(env EnvOverrides) {
	s.fillDefaults()
	if env.Store != "" {
		s.Storage.Backend = env.Store
	}
	if env.DataDir != "" {
		s.Storage.DataDir = env.DataDir
	}
	if env.DBPath != "" {
		s.Storage.DBPath = env.DBPath
	}
	if env.Key != "" {
		s.Storage.Key = env.Key
	}
	if env.LogLevel != "" {
		s.Logging.Level = env.LogLevel
	}
	if env.LogFile != "" {
		s.Logging.File = env.LogFile
	}
}
