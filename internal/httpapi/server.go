package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/textkit/internal/render"
	"github.com/dmitrymomot/textkit/pkg/format"
	"github.com/dmitrymomot/textkit/pkg/health"
	"github.com/dmitrymomot/textkit/pkg/i18n"
	"github.com/dmitrymomot/textkit/pkg/logger"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultMaxBodyBytes   = 1 << 20
)

// Server exposes the normalization and formatting packages over HTTP.
type Server struct {
	router         chi.Router
	logger         *slog.Logger
	locales        format.LocaleProvider
	humanizer      format.Humanizer
	render         *render.Renderer
	clock          func() time.Time
	checks         health.Checks
	available      []string
	corsOrigins    []string
	requestTimeout time.Duration
	maxBodyBytes   int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProvider sets the default locale and timezone source.
func WithProvider(p format.LocaleProvider) Option {
	return func(s *Server) {
		if p != nil {
			s.locales = p
		}
	}
}

// WithHumanizer enables the relative-time styles of /v1/format/time.
func WithHumanizer(h format.Humanizer) Option {
	return func(s *Server) {
		s.humanizer = h
	}
}

// WithClock replaces time.Now as the reference for relative times.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithRequestTimeout bounds each request. Zero or less disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithCheck adds a named readiness check to /health/ready.
func WithCheck(name string, fn health.CheckFunc) Option {
	return func(s *Server) {
		s.checks[name] = fn
	}
}

// New builds a Server and its routes.
func New(opts ...Option) *Server {
	s := &Server{
		logger:         logger.Discard(),
		locales:        format.NewSystemProvider(),
		clock:          time.Now,
		checks:         health.Checks{},
		requestTimeout: defaultRequestTimeout,
		maxBodyBytes:   defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, tag := range i18n.Formats() {
		s.available = append(s.available, tag.String())
	}

	timeOpts := []format.TimeOption{format.WithClock(s.clock)}
	if s.humanizer != nil {
		timeOpts = append(timeOpts, format.WithHumanizer(s.humanizer))
	}
	s.render = render.New(format.NewNumber(s.locales), format.NewTime(s.locales, timeOpts...))

	s.checks["formats"] = func(context.Context) error {
		_, err := i18n.LookupFormat(i18n.Canonical(format.FallbackLocale))
		return err
	}
	if s.humanizer != nil {
		s.checks["humanizer"] = func(context.Context) error {
			_, err := s.humanizer.Humanize(time.Minute, format.HumanizeOptions{})
			return err
		}
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	if len(s.corsOrigins) > 0 {
		r.Use(s.cors)
	}
	r.Use(s.negotiateLocale)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.checks, health.WithLogger(s.logger)))

	r.Route("/v1", func(r chi.Router) {
		if s.requestTimeout > 0 {
			r.Use(middleware.Timeout(s.requestTimeout))
		}
		r.Use(s.limitBody)

		r.Get("/locales", s.wrap(s.handleLocales))
		r.Get("/pipelines", s.wrap(s.handlePipelines))
		r.Post("/normalize/{pipeline}", s.wrap(s.handleNormalize))
		r.Post("/convert/base", s.wrap(s.handleConvertBase))
		r.Post("/convert/alpha", s.wrap(s.handleConvertAlpha))
		r.Post("/translit", s.wrap(s.handleTranslit))
		r.Post("/text/replace", s.wrap(s.handleTextReplace))
		r.Post("/text/match", s.wrap(s.handleTextMatch))
		r.Post("/format/number", s.wrap(s.handleFormatNumber))
		r.Post("/format/time", s.wrap(s.handleFormatTime))
	})

	r.NotFound(s.wrap(func(http.ResponseWriter, *http.Request) error {
		return &HTTPError{Code: http.StatusNotFound, Message: "route not found", ErrorCode: "not_found"}
	}))
	r.MethodNotAllowed(s.wrap(func(http.ResponseWriter, *http.Request) error {
		return &HTTPError{Code: http.StatusMethodNotAllowed, Message: "method not allowed", ErrorCode: "method_not_allowed"}
	}))

	s.router = r
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.handleError(w, r, err)
		}
	}
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := AsHTTPError(err)
	httpErr.RequestID = logger.RequestID(r.Context())

	if httpErr.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	} else {
		s.logger.DebugContext(r.Context(), "request rejected", slog.Any("error", err), slog.Int("status", httpErr.Code))
	}

	writeJSON(w, httpErr.Code, httpErr)
}
