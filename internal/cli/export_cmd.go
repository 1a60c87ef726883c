package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	format := newEnumValue(importer.FormatYAML, importer.FormatYAML, importer.FormatJSON)
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored document as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Backup.Export(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := importer.Encode(w, b, format.value); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities and %d log entries to %s\n",
					len(b.Activities), len(b.Logs), output)
			}
			return nil
		},
	}
	cmd.Flags().VarP(format, "format", "f", "Output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var merge, yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a backup written by export",
		Long: `Restore a YAML or JSON backup written by "streakmind export".

By default the backup replaces the tracker and transcript, plus settings and
memory when the file carries them. With --merge only activities and log
entries that are not already stored are added. Streaks are always derived
again from the resulting log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := importer.LoadBackup(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			mode := contract.ImportReplace
			if merge {
				mode = contract.ImportMerge
			} else {
				ok, err := confirm(app, yes, "Replace all stored data with this backup?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			res, err := app.Backup.Import(cmd.Context(), b, mode)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "Add unseen entries instead of replacing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace without confirmation")
	return cmd
}
