package cli

import (
	"fmt"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"logs"},
		Short:   "Inspect and correct the activity log",
	}
	cmd.AddCommand(newLogListCmd(app), newLogDeleteCmd(app))
	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var (
		activity string
		limit    int
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List log entries, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Tracker.ListLogs(cmd.Context(), activity, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLogs(logs, app.today()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "Only entries for this activity")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	return cmd
}

func newLogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one log entry and re-derive its streak",
		Long: `Delete one log entry by ID or unique ID prefix as shown by 'log list'.
The activity's streak is recomputed from the remaining entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := logIDs(cmd.Context(), app)
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], ids, domain.ErrLogNotFound)
			if err != nil {
				return err
			}
			res, err := app.Tracker.DeleteLog(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s entry from %s %s\n",
				formatter.StyleRed.Render("✖"),
				formatter.Bold(res.Entry.Activity),
				res.Entry.Date,
				formatter.Dim("· streak now ")+formatter.FormatStreak(res.CurrentStreak))
			return nil
		},
	}
}

func newStreaksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streaks",
		Short: "Show streaks and badge progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Tracker.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStreaks(st.Streaks))
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Recompute every streak from the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Tracker.RebuildStreaks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Streaks rebuilt")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStreaks(m))
			return nil
		},
	})
	return cmd
}
