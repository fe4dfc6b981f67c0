package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/provinciareal/dashboard/internal/alerts"
	"github.com/provinciareal/dashboard/internal/dashboard"
	"github.com/provinciareal/dashboard/internal/datasync"
	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/middleware"
	"github.com/provinciareal/dashboard/internal/ratelimit"
	"github.com/provinciareal/dashboard/internal/telemetry"
)

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration    `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration    `mapstructure:"write_timeout"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Dashboard computes the figures served under /api/dashboard and /api/alerts.
type Dashboard interface {
	Metrics(ctx context.Context, q dashboard.Query) (*entity.DashboardMetrics, error)
	Realtime(ctx context.Context, tz string) (*entity.DashboardMetrics, error)
	UTM(ctx context.Context, q dashboard.Query) (*entity.UTMAnalysis, error)
	ActiveAlerts(ctx context.Context, tz string) (*alerts.Report, error)
}

// Syncer refreshes the caches on demand.
type Syncer interface {
	RunOnce(ctx context.Context, from, to time.Time) (*datasync.Result, error)
	Window() (time.Time, time.Time)
}

// Server is the http server
type Server struct {
	c       *Config
	hs      *http.Server
	dash    Dashboard
	alerts  dependency.Alerts
	sync    Syncer
	rates   dependency.RatesService
	limiter *ratelimit.MultiKeyLimiter
	done    chan struct{}
}

// New creates a new server
func New(c *Config, dash Dashboard, alertStore dependency.Alerts, sync Syncer, rates dependency.RatesService) *Server {
	return &Server{
		c:       c,
		dash:    dash,
		alerts:  alertStore,
		sync:    sync,
		rates:   rates,
		limiter: ratelimit.NewMultiKeyLimiter(c.RateLimit),
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ClientIdentifier)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(instrument)
	r.Use(s.cors().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", telemetry.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.readLimit)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/metrics", s.getMetrics)
			r.Get("/realtime", s.getRealtime)
			r.Get("/utm", s.getUTM)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", s.getActiveAlerts)
			r.Route("/config", func(r chi.Router) {
				r.Get("/", s.listAlertConfigs)
				r.Post("/", s.addAlertConfig)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", s.updateAlertConfig)
					r.Delete("/", s.deleteAlertConfig)
				})
			})
		})

		r.Post("/sync", s.runSync)
		r.Get("/rates", s.getRate)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:         listenerAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.c.ReadTimeout,
		WriteTimeout: s.c.WriteTimeout,
	}

	go func() {
		slog.Default().InfoContext(ctx, "provincia-dashboard new listener",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func (s *Server) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}

	return false
}

func (s *Server) readLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.limiter.CheckRead(middleware.GetClientIP(r.Context())); err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		slog.Default().InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("client_ip", middleware.GetClientIP(r.Context())),
			slog.String("client_session", middleware.GetClientSession(r.Context())),
		)
	})
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		telemetry.HTTPRequests.WithLabelValues(r.Method, route, fmt.Sprint(status)).Inc()
		telemetry.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
