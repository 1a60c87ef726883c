package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and process hooks used by CLI commands.
type App struct {
	Tracker    service.TrackerService
	Transcript service.TranscriptService
	Settings   service.SettingsService
	Memory     service.MemoryService
	Backup     service.BackupService

	// Serve runs the HTTP API until ctx is canceled. Nil disables "serve".
	Serve func(ctx context.Context) error
	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	Now           func() time.Time
	// HistoryPath is where the shell keeps input history. Empty disables it.
	HistoryPath string
}

// NewApp builds an App around one set of services.
func NewApp(svc *service.Services) *App {
	return &App{
		Tracker:    svc.Tracker,
		Transcript: svc.Transcript,
		Settings:   svc.Settings,
		Memory:     svc.Memory,
		Backup:     svc.Backup,
	}
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) today() string {
	return domain.DayOf(a.now())
}

// NewRootCmd creates the top-level "streakmind" command and registers all
// subcommands against app. Run without arguments on a terminal it opens the
// chat shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "streakmind",
		Short:         "Conversational habit tracker with points, streaks and badges",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSayCmd(app),
		newStatsCmd(app),
		newActivityCmd(app),
		newLogCmd(app),
		newStreaksCmd(app),
		newChatCmd(app),
		newSettingsCmd(app),
		newMemoryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newServeCmd(app),
		newShellCmd(app),
	)

	return root
}
