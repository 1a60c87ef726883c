package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/spf13/cobra"
)

func newMemoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Show what is remembered about you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Memory.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMemory(m))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear [field...]",
		Short: "Forget everything, or only the named fields",
		Long: "Forget everything, or only the named fields: name, " +
			strings.Join(domain.MemoryCategories, ", ") + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Memory.Clear(cmd.Context(), args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Memory cleared")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMemory(m))
			return nil
		},
	}

	forget := &cobra.Command{
		Use:     "forget <category> <item...>",
		Short:   "Remove one remembered item",
		Example: `  streakmind memory forget goals run a marathon`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := strings.Join(args[1:], " ")
			if _, err := app.Memory.RemoveItem(cmd.Context(), args[0], item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Forgot %q from %s\n", formatter.StyleGreen.Render("✔"), item, args[0])
			return nil
		},
	}

	cmd.AddCommand(clearCmd, forget)
	return cmd
}
