package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"shiftbot/internal/config"
	"shiftbot/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Serve   ServeCmd   `cmd:"" help:"Run the webhook server (default)" default:"1"`
	Browse  BrowseCmd  `cmd:"browse" help:"Browse a crew's reports in the terminal"`
	Reports ReportsCmd `cmd:"reports" help:"Inspect persisted reports (list, show, log, export)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SHIFTBOT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("SHIFTBOT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SHIFTBOT_DEBUG_FILE", logFilePath)
		}
	}

	// Create container after logging is initialized so the GORM logger
	// never sees a nil logger.
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
