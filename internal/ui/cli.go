package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/afazeres/internal/config"
	"github.com/javiermolinar/afazeres/internal/debuglog"
	"github.com/javiermolinar/afazeres/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool             // Enable debug logging
	now    func() time.Time // reference clock for "today"
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "afazeres",
		Short: "Extract dates, times and more from Portuguese task notes",
		Long: `Afazeres reads free-form Portuguese to-do lines and pulls out what matters:
the date ("amanhã", "13 de agosto", "30/01"), the time of day, the action,
links, emails and #tags.

Run without arguments for the interactive extractor.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !a.config.UI.Color {
				DisableColor()
			}
			return debuglog.Init(a.debug, a.config.Log.DebugPath)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config, a.now)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (JSON events to log.debug_path)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.extractCmd())
	a.root.AddCommand(a.dateCmd())
	a.root.AddCommand(a.serveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "afazeres %s (commit: %s)\n", Version, Commit)
		},
	}
}

// today resolves the --today flag, defaulting to the app clock.
func (a *App) today(flag string) (time.Time, error) {
	if flag == "" {
		return a.now(), nil
	}
	return parseToday(flag)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources held by the application.
func (a *App) Close() error {
	debuglog.Close()
	return nil
}
