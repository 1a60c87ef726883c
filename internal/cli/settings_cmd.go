package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key=value>...",
		Short: "Change settings by dotted key",
		Example: `  streakmind settings set theme=light
  streakmind settings set enabledPersonalities.trainer=false preferences.timeFormat=12h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := settingsPatch(args)
			if err != nil {
				return err
			}
			s, err := app.Settings.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Settings reset")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.AddCommand(set, reset)
	return cmd
}

// settingsPatch turns key=value pairs with dotted keys into a nested JSON
// document. true and false become booleans; anything else stays a string.
func settingsPatch(pairs []string) (json.RawMessage, error) {
	root := map[string]any{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}

		var value any = raw
		switch raw {
		case "true":
			value = true
		case "false":
			value = false
		}

		parts := strings.Split(key, ".")
		node := root
		for _, p := range parts[:len(parts)-1] {
			next, exists := node[p]
			if !exists {
				child := map[string]any{}
				node[p] = child
				node = child
				continue
			}
			child, isMap := next.(map[string]any)
			if !isMap {
				return nil, fmt.Errorf("key %q conflicts with an earlier value", key)
			}
			node = child
		}
		last := parts[len(parts)-1]
		if _, isMap := node[last].(map[string]any); isMap {
			return nil, fmt.Errorf("key %q conflicts with an earlier value", key)
		}
		node[last] = value
	}
	return json.Marshal(root)
}
