package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/spf13/cobra"
)

func newSayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "say <message...>",
		Short: "Send one message, logging an activity or chatting",
		Example: `  streakmind say did 3 coding questions
  streakmind say "slept 7.5 hours last night"
  streakmind say start tracking yoga`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "thinking")
			}
			out, err := ingest(cmd.Context(), app, strings.Join(args, " "))
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// ingest sends text through the pipeline and renders the result.
func ingest(ctx context.Context, app *App, text string) (string, error) {
	res, err := app.Tracker.Ingest(ctx, contract.IngestRequest{Message: text})
	if err != nil {
		return "", err
	}
	return formatter.FormatIngestResult(res, showScores(ctx, app)), nil
}

func showScores(ctx context.Context, app *App) bool {
	s, err := app.Settings.Get(ctx)
	if err != nil {
		return true
	}
	return s.ShowScores
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show points, streaks, badges and recent activity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStats(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
}

func printStats(ctx context.Context, app *App, w io.Writer) error {
	st, err := app.Tracker.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatter.FormatStats(st, app.today()))
	return nil
}
