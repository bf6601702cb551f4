package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/server"
	"github.com/alexisbeaulieu97/folio/internal/web"
)

type serveOptions struct {
	Addr  string
	Watch bool
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page over HTTP",
		Long: `Serve the page with a theme toggle persisted in a cookie. With --watch the
configured data file is reloaded whenever it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Addr, "addr", "a", "", "Listen address (defaults to server.addr)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the data file on change")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, root *rootFlags, opts serveOptions) error {
	app, err := loadApp(root, "serve", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.portfolio()
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	renderer, err := web.NewRenderer(data)
	if err != nil {
		return err
	}

	srv := server.New(renderer, app.log, server.Options{
		RevealThreshold: app.cfg.Reveal.Threshold,
		TypingInterval:  app.cfg.Typing.Interval,
	})

	addr := opts.Addr
	if addr == "" {
		addr = app.cfg.Server.Addr
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, addr)
	})

	if opts.Watch {
		if app.cfg.DataFile == "" {
			app.log.Warn("watch requested but no data file is configured")
		} else {
			path := app.cfg.DataFile
			g.Go(func() error {
				return watchFile(gctx, path, watchDebounce, app.log, func() {
					reloadRenderer(srv, path, app.log)
				})
			})
		}
	}

	return g.Wait()
}

// reloadRenderer keeps the current page when the new data does not load.
func reloadRenderer(srv *server.Server, path string, log *logger.Logger) {
	data, err := portfolio.Load(path)
	if err != nil {
		log.WarnErr(err, "data file reload failed, keeping previous page")
		return
	}
	renderer, err := web.NewRenderer(data)
	if err != nil {
		log.WarnErr(err, "page render setup failed, keeping previous page")
		return
	}
	srv.SetRenderer(renderer)
	log.WithFields(map[string]any{"path": path}).Info("data file reloaded")
}
