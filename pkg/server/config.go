package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/markup/pkg/cache"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address.
	// Default: ":8080"
	Addr string

	// Docs holds the document descriptions.
	Docs fs.FS

	// CacheTTL is how long a rendered document stays cached.
	// Zero keeps entries until the backend evicts them; negative disables
	// the cache.
	CacheTTL time.Duration

	// Render configures the serializer.
	Render render.Config

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5s
	ReadHeaderTimeout time.Duration

	// MaxPreviewSize is the largest description accepted on /preview.
	// Default: 1MB
	MaxPreviewSize int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxPreviewSize:    1 << 20,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.MaxPreviewSize == 0 {
		c.MaxPreviewSize = d.MaxPreviewSize
	}
	return c
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCache sets the render cache. Without one every request renders.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithPrometheus registers the server metrics on reg and serves reg on
// /metrics. The default is a private registry.
func WithPrometheus(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithMetricsOptions passes options to middleware.NewMetrics.
func WithMetricsOptions(opts ...middleware.MetricsOption) Option {
	return func(s *Server) {
		s.metricsOpts = append(s.metricsOpts, opts...)
	}
}

// WithCheckOrigin sets the origin check of the preview websocket.
// The default accepts same-origin requests only.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

// emptyFS is served when Config.Docs is nil.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (emptyFS) ReadDir(string) ([]fs.DirEntry, error) { return nil, nil }

func (s *Server) docs() fs.FS {
	if s.config.Docs == nil {
		return emptyFS{}
	}
	return s.config.Docs
}
