// Package web serves the portfolio over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/mdashik24x7/portfolio/internal/analytics"
	"github.com/mdashik24x7/portfolio/internal/config"
	"github.com/mdashik24x7/portfolio/internal/contact"
	"github.com/mdashik24x7/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options wires the server's collaborators.
type Options struct {
	Config config.Config
	Tables *content.Tables
	// Tracker may be nil, which disables visit tracking and the admin area.
	Tracker *analytics.Tracker
	// nil hides the contact form
	Mailer contact.Mailer
	Logger *slog.Logger
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg        config.Config
	tables     *content.Tables
	tracker    *analytics.Tracker
	mailer     contact.Mailer
	logger     *slog.Logger
	engine     *gin.Engine
	adminToken string

	// in-flight visit writes
	pending sync.WaitGroup
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Tables == nil {
		return nil, errors.New("web: content tables are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	gin.SetMode(opts.Config.Mode)

	s := &Server{
		cfg:     opts.Config,
		tables:  opts.Tables,
		tracker: opts.Tracker,
		mailer:  opts.Mailer,
		logger:  opts.Logger,
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.themeMiddleware())
	r.SetHTMLTemplate(tmpl)

	if s.tracker != nil {
		token, err := analytics.RandomToken()
		if err != nil {
			return nil, fmt.Errorf("generating admin token: %w", err)
		}
		s.adminToken = token
		r.Use(s.visitorTracking())
		s.setupAdminRoutes(r)
		s.logger.Info("admin access available", "path", "/admin/login")
		if gin.Mode() == gin.DebugMode {
			s.logger.Debug("admin token (dev only)", "token", token)
		}
	}

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"tracking":  s.tracker != nil,
			"retention": s.cfg.Tracking.RetentionDays,
		})
	})

	if s.mailer != nil {
		s.setupContactRoutes(r)
	}

	r.GET("/theme", s.currentTheme)
	r.POST("/theme/toggle", s.toggleTheme)
	r.GET("/nav/:id", s.navigate)

	skills := r.Group("/skills/:category")
	skills.GET("", s.skillPanel)
	skills.GET("/tooltip", s.skillTooltip)
	skills.GET("/chart.svg", s.skillChartSVG)

	s.engine = r
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"lucide": lucide,
		"query":  url.QueryEscape,
		"percent": func(f float64) float64 {
			return f * 100
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Wait blocks until background visit writes have finished.
func (s *Server) Wait() {
	s.pending.Wait()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("portfolio listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.Wait()
	s.logger.Info("portfolio stopped")
	return nil
}
