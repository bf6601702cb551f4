package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/web"
)

type buildOptions struct {
	Output    string
	Theme     string
	RevealAll bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the portfolio as a static web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output directory (defaults to build.output)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Initial theme, dark or light (defaults to the persisted preference)")
	cmd.Flags().BoolVar(&opts.RevealAll, "reveal-all", false, "Render every block visible without scroll animations")

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, opts buildOptions) error {
	app, err := loadApp(root, "build", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	initial, err := app.initialTheme(opts.Theme)
	if err != nil {
		return err
	}

	data, err := app.portfolio()
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	renderer, err := web.NewRenderer(data)
	if err != nil {
		return err
	}

	output := opts.Output
	if output == "" {
		output = app.cfg.Build.Output
	}

	written, err := web.WriteSite(output, renderer, initial, web.RenderOptions{
		RevealThreshold: app.cfg.Reveal.Threshold,
		TypingInterval:  app.cfg.Typing.Interval,
		RevealAll:       opts.RevealAll,
	})
	if err != nil {
		return err
	}

	app.log.WithFields(map[string]any{"output": output, "files": len(written)}).Info("site written")
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// initialTheme parses an explicit theme flag or falls back to the persisted
// preference.
func (a *appContext) initialTheme(flag string) (theme.Theme, error) {
	if flag != "" {
		t, ok := theme.Parse(flag)
		if !ok {
			return "", fmt.Errorf("invalid theme %q: must be dark or light", flag)
		}
		return t, nil
	}

	provider := a.themeProvider()
	defer provider.Close()
	return provider.Theme(), nil
}
