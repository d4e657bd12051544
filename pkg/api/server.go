package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/mxlint/pkg/httputil"
	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/linter/rules"
)

// Options configures a Server. Zero values fall back to sensible
// defaults.
type Options struct {
	Config       *linter.Config
	CacheSize    int
	CacheTTL     time.Duration
	MaxBodyBytes int64
	Logger       *logrus.Logger
}

const (
	defaultCacheSize    = 1024
	defaultCacheTTL     = 10 * time.Minute
	defaultMaxBodyBytes = 10 << 20 // 10 MiB
)

// Server lints diagram documents over HTTP.
type Server struct {
	engine  *linter.Engine
	cache   *resultCache
	logger  *logrus.Logger
	metrics *serverMetrics
	router  *mux.Router
}

// NewServer builds a server with the default rule battery registered.
func NewServer(opts Options) *Server {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	engine := linter.NewEngine(opts.Config)
	for _, rule := range rules.DefaultRules() {
		engine.Registry().Register(rule)
	}

	s := &Server{
		engine:  engine,
		cache:   newResultCache(opts.CacheSize, opts.CacheTTL),
		logger:  opts.Logger,
		metrics: newServerMetrics(),
		router:  mux.NewRouter(),
	}

	s.setupRoutes(opts.MaxBodyBytes)

	return s
}

func (s *Server) setupRoutes(maxBodyBytes int64) {
	s.router.Use(
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(s.logger),
		httputil.RecoveryMiddleware(s.logger),
		httputil.MaxBytesMiddleware(maxBodyBytes),
	)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/lint", s.handleLint).Methods(http.MethodPost)
	api.HandleFunc("/rules", s.handleListRules).Methods(http.MethodGet)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
