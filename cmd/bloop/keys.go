package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/app"
	"github.com/bloopai/bloop-tui/internal/shortcuts"
	"github.com/bloopai/bloop-tui/internal/state"
)

func newKeysCmd(f *flags) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the global keyboard shortcuts",
		Long: `List every global shortcut with its chord, after applying the
keybindings section of the config file. With --check, only validate the
bindings and exit non-zero if any are invalid or clash.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(*f)
			if err != nil {
				return err
			}

			registry, err := app.BuildRegistry(cfg, state.NewStore(state.Options{}), actions.Deps{})
			if err != nil {
				return err
			}

			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "%d shortcuts OK\n", registry.Len())
				return nil
			}
			printKeys(cmd.OutOrStdout(), registry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "validate the configured keybindings and exit")
	return cmd
}

// printKeys writes the catalog in registration order, one row per action.
func printKeys(w io.Writer, registry *shortcuts.Registry) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CHORD", "KEY", "ACTION", "CATEGORY", "DESCRIPTION")

	for _, a := range registry.Actions() {
		t.Row(a.Chord.String(), a.Chord.TeaKey(), string(a.Name), a.Category.String(), a.Description)
	}

	fmt.Fprintln(w, t.Render())
}
