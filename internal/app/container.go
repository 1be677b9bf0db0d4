// Package app provides the dependency injection container for the application.
package app

import (
	"tempo/internal/domain"
	"tempo/internal/infra/config"
	"tempo/internal/infra/jsonstore"
	"tempo/internal/infra/logbook"
	"tempo/internal/infra/logging"
	"tempo/internal/service"
)

// Paths holds the resolved data locations.
type Paths struct {
	DataDir   string // Root data directory
	TasksPath string // Path to tasks.json
	LogsPath  string // Path to daily_logs.json
	StatsDir  string // Path to stats directory
	ArchDir   string // Path to archive directory
	LogDir    string // Path to log output directory
}

// newPaths derives all data locations from the data directory.
func newPaths(dataDir string) Paths {
	return Paths{
		DataDir:   dataDir,
		TasksPath: domain.TasksPath(dataDir),
		LogsPath:  domain.DailyLogsPath(dataDir),
		StatsDir:  domain.StatsDir(dataDir),
		ArchDir:   domain.ArchiveDir(dataDir),
		LogDir:    domain.LogsDir(dataDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for services.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	DailyLogs        domain.DailyLogStore
	Stats            domain.StatsStore
	Archive          domain.ArchiveStore
	Clock            domain.Clock
	Logger           domain.Logger

	// Configuration
	AppConfig *domain.Config
	Paths     Paths
}

// New creates a new Container from the user's configuration.
func New() (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := config.DataDir(cfg)
	if err != nil {
		return nil, err
	}
	paths := newPaths(dataDir)

	taskStore := jsonstore.New(paths.TasksPath)
	if err := taskStore.Initialize(); err != nil {
		return nil, err
	}
	logger := logging.New(paths.LogDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            taskStore,
		StoreInitializer: taskStore,
		DailyLogs:        logbook.NewDailyLogStore(paths.LogsPath),
		Stats:            logbook.NewStatsStore(paths.StatsDir),
		Archive:          logbook.NewArchiveStore(paths.ArchDir),
		Clock:            domain.RealClock{},
		Logger:           logger,
		AppConfig:        cfg,
		Paths:            paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg *domain.Config,
	tasks domain.TaskRepository,
	dailyLogs domain.DailyLogStore,
	stats domain.StatsStore,
	archive domain.ArchiveStore,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	return &Container{
		Tasks:     tasks,
		DailyLogs: dailyLogs,
		Stats:     stats,
		Archive:   archive,
		Clock:     clock,
		Logger:    logger,
		AppConfig: cfg,
	}
}

// Service factory methods

// TaskService returns the task service boundary.
func (c *Container) TaskService() *service.TaskService {
	return service.NewTaskService(c.Tasks, c.Clock, c.Logger)
}

// DailyLogService returns the daily meeting log service.
func (c *Container) DailyLogService() *service.DailyLogService {
	return service.NewDailyLogService(c.DailyLogs)
}

// ArchiveService returns the archiving service.
func (c *Container) ArchiveService() *service.ArchiveService {
	return service.NewArchiveService(c.Tasks, c.Stats, c.Archive, c.DailyLogs, c.Clock, c.Logger)
}

// HistoryService returns the history service.
func (c *Container) HistoryService() *service.HistoryService {
	return service.NewHistoryService(c.Tasks, c.DailyLogs, c.Clock)
}

// SortStrategy returns the configured default sort strategy.
func (c *Container) SortStrategy() domain.SortStrategy {
	if c.AppConfig == nil {
		return domain.DefaultSortStrategy
	}
	strategy, err := domain.ParseSortStrategy(c.AppConfig.Sort)
	if err != nil {
		return domain.DefaultSortStrategy
	}
	return strategy
}
