package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the persisted theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeProvider(cmd, root, "theme.get", func(p *theme.Provider) error {
				fmt.Fprintln(cmd.OutOrStdout(), p.Theme())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Persist a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("invalid theme %q: must be dark or light", args[0])
			}
			return withThemeProvider(cmd, root, "theme.set", func(p *theme.Provider) error {
				if err := p.Set(t); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.Theme())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeProvider(cmd, root, "theme.toggle", func(p *theme.Provider) error {
				next, err := p.Toggle()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), next)
				return nil
			})
		},
	})

	return cmd
}

func withThemeProvider(cmd *cobra.Command, root *rootFlags, name string, fn func(*theme.Provider) error) error {
	app, err := loadApp(root, name, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	provider := app.themeProvider()
	defer provider.Close()

	return fn(provider)
}
