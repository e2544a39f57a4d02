package cmd

import (
	"time"

	adapterexport "shiftbot/internal/adapters/export"
	adaptermemory "shiftbot/internal/adapters/memory"
	adapterstorage "shiftbot/internal/adapters/storage"
	"shiftbot/internal/config"
	"shiftbot/internal/dialog"
	"shiftbot/internal/ports"
	"shiftbot/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Machine       *dialog.Machine
	ReportService *services.ReportService
	Exporter      ports.Exporter
	Settings      *config.Settings

	// Internal - for cleanup only
	repo ports.ReportRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	// Create adapters
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	exporter := adapterexport.NewCSVExporter()

	// Sessions live in memory by default so a restart drops half-filled
	// dialogues. persist_sessions in settings.json keeps them in SQLite
	// across restarts instead.
	var sessionStore ports.SessionStore
	if settings.PersistSessions != nil && *settings.PersistSessions {
		sessionStore = adapterstorage.NewSessionStore(repo)
	} else {
		ttl := time.Duration(0)
		if settings.SessionTTLMinutes != nil {
			ttl = time.Duration(*settings.SessionTTLMinutes) * time.Minute
		}
		sessionStore = adaptermemory.NewSessionStore(ttl)
	}

	// Create services
	reportService := services.NewReportService(repo, exporter)
	machine := dialog.NewMachine(sessionStore, reportService)

	return &Container{
		Machine:       machine,
		ReportService: reportService,
		Exporter:      exporter,
		Settings:      settings,
		repo:          repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
