// Package demo serves a page with a live Chartist line chart carrying a
// tooltip, for trying options in a browser.
package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	tooltip "github.com/siongui/gopherjs-charttooltip"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Config configures the demo server.
type Config struct {
	Addr string

	// ScriptPath is the GopherJS build of the example app served as /app.js.
	ScriptPath string

	// OptionsPath is a YAML tooltip options file embedded in the page.
	OptionsPath string

	// Interval between series updates on /ws. Zero disables the feed.
	Interval time.Duration

	Seed int64

	Logger *slog.Logger

	// Registry receives the demo metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// Server is the demo HTTP server.
type Server struct {
	cfg      Config
	log      *slog.Logger
	options  tooltip.Options
	rawOpts  string
	registry *prometheus.Registry
	metrics  *metrics
	upgrader websocket.Upgrader
	seeds    atomic.Int64
}

// NewServer validates the tooltip options file, if any, and returns a
// server ready to run.
func NewServer(cfg Config) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		log:      cfg.Logger,
		options:  tooltip.DefaultOptions(),
		registry: cfg.Registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)
	s.seeds.Store(cfg.Seed)

	if cfg.OptionsPath != "" {
		data, err := os.ReadFile(cfg.OptionsPath)
		if err != nil {
			return nil, fmt.Errorf("read tooltip options %q: %w", cfg.OptionsPath, err)
		}
		opts, err := tooltip.ParseOptions(data, cfg.OptionsPath)
		if err != nil {
			return nil, err
		}
		s.options = opts
		s.rawOpts = string(data)
	}
	return s, nil
}

// Handler returns the router of the demo.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.pageHandler)
	r.Get("/app.js", s.scriptHandler)
	r.Get("/ws", s.feedHandler)
	r.Get("/healthz", healthzHandler)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("demo server listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("demo server stopped")
	return nil
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, struct {
		Title    string
		CSSClass string
		Options  string
	}{
		Title:    "Chart tooltip demo",
		CSSClass: s.options.CSSClass,
		Options:  s.rawOpts,
	})
	if err != nil {
		s.log.Error("render demo page", "error", err)
		return
	}
	s.metrics.pagesServed.Inc()
}

func (s *Server) scriptHandler(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ScriptPath == "" {
		http.Error(w, "no script configured; build example/ with gopherjs and pass --script", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	http.ServeFile(w, r, s.cfg.ScriptPath)
}

func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.websocketError.WithLabelValues("upgrade").Inc()
		s.log.Warn("feed upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.feedClients.Inc()
	defer s.metrics.feedClients.Dec()
	s.log.Info("feed client connected", "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// the page never writes; a read error means it went away
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if s.cfg.Interval <= 0 {
		<-ctx.Done()
		return
	}

	feed := DefaultFeed(s.seeds.Add(1))
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("feed client disconnected", "remote", r.RemoteAddr)
			return
		case <-ticker.C:
			if err := conn.WriteJSON(feed.Next()); err != nil {
				s.metrics.websocketError.WithLabelValues("write").Inc()
				s.log.Warn("feed write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
			s.metrics.updatesSent.Inc()
		}
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
