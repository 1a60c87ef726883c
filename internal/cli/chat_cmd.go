package cli

import (
	"fmt"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Manage the conversation transcript",
	}

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := app.Transcript.List(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(msgs) > limit {
				msgs = msgs[len(msgs)-limit:]
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTranscript(msgs, app.now()))
			return nil
		},
	}
	history.Flags().IntVarP(&limit, "limit", "n", 20, "Number of most recent messages (0 for all)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one message; logged activity is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := app.Transcript.List(cmd.Context())
			if err != nil {
				return err
			}
			ids := make([]string, len(msgs))
			for i, m := range msgs {
				ids[i] = m.ID
			}
			id, err := resolveID(args[0], ids, domain.ErrMessageNotFound)
			if err != nil {
				return err
			}
			if err := app.Transcript.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted message %s\n", formatter.StyleRed.Render("✖"), formatter.TruncID(id))
			return nil
		},
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole transcript; logged activity is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(app, yes, "Clear the whole conversation?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			if err := app.Transcript.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Transcript cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	cmd.AddCommand(history, del, clearCmd)
	return cmd
}
