package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

const staticWidth = 80

type viewOptions struct {
	Width int
	Plain bool
}

func newViewCmd(root *rootFlags) *cobra.Command {
	opts := viewOptions{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the portfolio in the terminal",
		Long: `Open the interactive viewer. When stdout is not a terminal, or with --plain,
the whole page is printed once instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Width of the plain rendering (defaults to the terminal width)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print the page once without the interactive viewer")

	return cmd
}

// terminalFile reports the file behind w when it is an interactive terminal.
func terminalFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}

func runView(cmd *cobra.Command, root *rootFlags, opts viewOptions) error {
	out := cmd.OutOrStdout()
	tty, interactive := terminalFile(out)
	interactive = interactive && !opts.Plain

	var logOut io.Writer = cmd.ErrOrStderr()
	if interactive {
		// The alternate screen owns the terminal.
		f, err := openLogFile()
		if err != nil {
			logOut = io.Discard
		} else {
			defer f.Close()
			logOut = f
		}
	}

	app, err := loadApp(root, "view", logOut)
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.portfolio()
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	provider := app.themeProvider()
	defer provider.Close()

	if !interactive {
		width := opts.Width
		if width <= 0 && tty != nil {
			if w, _, err := term.GetSize(int(tty.Fd())); err == nil {
				width = w
			}
		}
		if width <= 0 {
			width = staticWidth
		}
		fmt.Fprintln(out, tui.RenderStatic(data, provider.Theme(), width, app.cfg.Unicode))
		return nil
	}

	ctx := theme.WithProvider(cmd.Context(), provider)
	model, err := tui.NewModel(ctx, tui.Options{
		Portfolio:       data,
		Logger:          app.log,
		TypingInterval:  app.cfg.Typing.Interval,
		RevealThreshold: app.cfg.Reveal.Threshold,
		Unicode:         app.cfg.Unicode,
	})
	if err != nil {
		return err
	}

	app.log.Info("starting viewer")
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(tty),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
