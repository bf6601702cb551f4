// Package server serves the portfolio page over HTTP with gin. The theme is
// resolved per request from the "theme" cookie.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/web"
)

const shutdownTimeout = 5 * time.Second

// Options configures the page rendering of a Server.
type Options struct {
	RevealThreshold float64
	TypingInterval  time.Duration
}

// Server serves the page, the theme toggle and the static assets.
type Server struct {
	engine   *gin.Engine
	renderer atomic.Pointer[web.Renderer]
	logger   *logger.Logger
	opts     Options
}

// New builds the gin engine around r.
func New(r *web.Renderer, log *logger.Logger, opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{engine: gin.New(), logger: log, opts: opts}
	s.renderer.Store(r)

	s.engine.Use(gin.Recovery(), requestLogger(log))
	s.engine.StaticFS("/static", http.FS(web.StaticFS()))
	s.engine.GET("/healthz", s.handleHealth)

	scoped := s.engine.Group("/", themeScope(log))
	scoped.GET("/", s.handleIndex)
	scoped.POST("/theme/toggle", s.handleToggle)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// SetRenderer swaps the page renderer, e.g. after the data file changed.
func (s *Server) SetRenderer(r *web.Renderer) {
	s.renderer.Store(r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(map[string]any{"addr": addr}).Info("serving portfolio")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	}
}

func (s *Server) renderOptions() web.RenderOptions {
	return web.RenderOptions{
		AssetPrefix:     "/static/",
		ToggleAction:    "/theme/toggle",
		RevealThreshold: s.opts.RevealThreshold,
		TypingInterval:  s.opts.TypingInterval,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	provider, err := theme.Use(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Load().Render(&buf, provider.Theme(), s.renderOptions()); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleToggle(c *gin.Context) {
	provider, err := theme.Use(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	next, err := provider.Toggle()
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"theme": next.String()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// themeScope opens a theme provider over the request cookies for the rest
// of the chain and closes it afterwards.
func themeScope(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := theme.NewProvider(NewCookieStore(c), theme.WithLogger(log))
		defer provider.Close()

		ctx := theme.WithProvider(c.Request.Context(), provider)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requestLogger logs one line per request through the structured logger.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": requestID,
		}
		entry := log.WithFields(fields)
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.Last(), "request failed")
			return
		}
		entry.Debug("request")
	}
}
