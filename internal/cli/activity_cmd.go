package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"activities", "a"},
		Short:   "Manage tracked activities",
	}
	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityCreateCmd(app),
		newActivityUpdateCmd(app),
		newActivityDeleteCmd(app),
	)
	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities with scoring and streaks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Tracker.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities(st.Activities, st.Streaks))
			return nil
		},
	}
}

func newActivityCreateCmd(app *App) *cobra.Command {
	viz := vizValue()
	var description string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create an activity (form if name omitted)",
		Example: `  streakmind activity create yoga --points 4 --viz pie
  streakmind activity create "deep work" --description "no phone"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req contract.CreateActivityRequest
			if len(args) == 0 {
				if !app.interactive() {
					return errors.New("activity name is required")
				}
				d := activityDraft{Viz: viz.value, Description: description}
				if err := newActivityForm(&d).Run(); err != nil {
					return err
				}
				r, err := d.request()
				if err != nil {
					return err
				}
				req = r
			} else {
				points, err := changedFloat(cmd.Flags(), "points")
				if err != nil {
					return err
				}
				req = contract.CreateActivityRequest{
					Name:              args[0],
					CustomPoints:      points,
					VisualizationType: viz.viz(),
					Description:       description,
				}
			}

			a, err := app.Tracker.CreateActivity(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created activity %s %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(a.Name), formatter.VizLabel(a.VisualizationType))
			return nil
		},
	}

	cmd.Flags().Float64("points", 0, "Custom points per unit")
	cmd.Flags().Var(viz, "viz", "Visualization: bar, heatmap, pie or progress")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	viz := vizValue()

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Rename or reconfigure an activity",
		Example: `  streakmind activity update yoga --points 6
  streakmind activity update yoga --name "morning yoga"
  streakmind activity update yoga --clear-points`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := changedFloat(cmd.Flags(), "points")
			if err != nil {
				return err
			}
			clearPoints, _ := cmd.Flags().GetBool("clear-points")
			req := contract.UpdateActivityRequest{
				Name:              changedString(cmd.Flags(), "name"),
				CustomPoints:      points,
				ClearCustomPoints: clearPoints,
				Description:       changedString(cmd.Flags(), "description"),
			}
			if viz.set {
				v := viz.viz()
				req.VisualizationType = &v
			}
			if req.Name == nil && req.CustomPoints == nil && !req.ClearCustomPoints &&
				req.Description == nil && req.VisualizationType == nil {
				return errors.New("nothing to update: pass --name, --points, --clear-points, --viz or --description")
			}

			a, err := app.Tracker.UpdateActivity(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated activity %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(a.Name))
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name; history moves with it")
	cmd.Flags().Float64("points", 0, "Custom points per unit")
	cmd.Flags().Bool("clear-points", false, "Remove the custom points override")
	cmd.Flags().Var(viz, "viz", "Visualization: bar, heatmap, pie or progress")
	cmd.Flags().String("description", "", "Short description")
	cmd.MarkFlagsMutuallyExclusive("points", "clear-points")
	return cmd
}

func newActivityDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an activity with its logs and streak",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(app, yes, fmt.Sprintf("Delete %q and all of its history?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			res, err := app.Tracker.DeleteActivity(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s %s\n",
				formatter.StyleRed.Render("✖"), formatter.Bold(res.Activity),
				formatter.Dim(fmt.Sprintf("(%d log entries removed)", res.LogsRemoved)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// confirm asks on a terminal. Without one, destructive commands need --yes.
func confirm(app *App, yes bool, question string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, errors.New("refusing to proceed without --yes on a non-interactive terminal")
	}
	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(question).Affirmative("Yes").Negative("No").Value(&ok),
	)).WithTheme(streakmindHuhTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// resolveID expands a unique ID prefix against ids.
func resolveID(prefix string, ids []string, notFound error) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("id prefix %q is ambiguous", prefix))
			}
			match = id
		}
	}
	if match == "" {
		return "", notFound
	}
	return match, nil
}

func logIDs(ctx context.Context, app *App) ([]string, error) {
	logs, err := app.Tracker.ListLogs(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(logs))
	for i, e := range logs {
		ids[i] = e.ID
	}
	return ids, nil
}
