package domain

import "path/filepath"

// ConfigFileName is the configuration file name under the config directory.
const ConfigFileName = "config.toml"

// File and directory names under the data directory.
const (
	TasksFileName     = "tasks.json"
	DailyLogsFileName = "daily_logs.json"
	StatsDirName      = "stats"
	ArchiveDirName    = "archive"
	LogsDirName       = "logs"
)

// Config represents the application configuration.
type Config struct {
	DataDir     string    `toml:"data_dir"`     // Where task data lives ("" = default)
	Sort        string    `toml:"sort"`         // Default sort strategy for list views
	ArchiveDays int       `toml:"archive_days"` // Completed-task age before archiving
	Log         LogConfig `toml:"log"`          // [log] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Sort:        string(DefaultSortStrategy),
		ArchiveDays: 30,
		Log:         LogConfig{Level: "info"},
	}
}

// TasksPath returns the task store path under dataDir.
func TasksPath(dataDir string) string {
	return filepath.Join(dataDir, TasksFileName)
}

// DailyLogsPath returns the daily log store path under dataDir.
func DailyLogsPath(dataDir string) string {
	return filepath.Join(dataDir, DailyLogsFileName)
}

// StatsDir returns the monthly stats directory under dataDir.
func StatsDir(dataDir string) string {
	return filepath.Join(dataDir, StatsDirName)
}

// ArchiveDir returns the archive directory under dataDir.
func ArchiveDir(dataDir string) string {
	return filepath.Join(dataDir, ArchiveDirName)
}

// LogsDir returns the log directory under dataDir.
func LogsDir(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName)
}
