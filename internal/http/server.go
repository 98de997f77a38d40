package http

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"hoadash/internal/branding"
	"hoadash/internal/cache"
	"hoadash/internal/core"
	"hoadash/internal/dashboard"
	"hoadash/internal/dataset"
	"hoadash/internal/i18n"
	applog "hoadash/internal/log"
	"hoadash/internal/middleware/ratelimit"
	"hoadash/internal/middleware/security"
	"hoadash/internal/middleware/trace"
	appweb "hoadash/web"
)

// Options configures a Server.
type Options struct {
	Addr            string
	Reader          dataset.Reader
	Injector        *branding.Injector
	BrandPages      bool
	DefaultLanguage i18n.Language
	DefaultCurrency core.Currency
	CacheSize       int
	CacheTTL        time.Duration
	RateLimit       int
	Logger          *applog.Logger
}

// rendered is a memoized dashboard for one state.
type rendered struct {
	view *dashboard.View
	page dashboard.Page
}

type appMetrics struct {
	uptime         time.Time
	pagesRendered  atomic.Int64
	docsBranded    atomic.Int64
	brandFailures  atomic.Int64
	stateFallbacks atomic.Int64
}

type Server struct {
	http.Server

	templates *template.Template
	reader    dataset.Reader
	injector  *branding.Injector
	logger    *applog.Logger
	structLog *applog.StructuredLogger

	defaultLang     i18n.Language
	defaultCurrency core.Currency

	pages        *cache.LRUCache[rendered]
	cacheManager *cache.Manager
	rateLimiter  *ratelimit.Limiter
	detector     *security.Detector
	tracer       *trace.Middleware
	appMetrics   *appMetrics

	shutdownOnce sync.Once
}

// NewServer parses the embedded templates and wires the routes.
func NewServer(opts Options) (*Server, error) {
	if opts.Reader == nil {
		return nil, errors.New("dataset reader is required")
	}
	if opts.Logger == nil {
		opts.Logger = applog.New(applog.DefaultConfig())
	}
	if opts.Injector == nil {
		opts.Injector = branding.NewInjector(branding.DefaultConfig())
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = i18n.English
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = core.MXN
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 64
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	logger := opts.Logger.WithComponent(applog.ComponentHTTP)
	s := &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		templates:       t,
		reader:          opts.Reader,
		injector:        opts.Injector,
		logger:          logger,
		structLog:       applog.NewStructuredLogger(opts.Logger),
		defaultLang:     opts.DefaultLanguage,
		defaultCurrency: opts.DefaultCurrency,
		pages:           cache.NewLRUCache[rendered](opts.CacheSize, opts.CacheTTL),
		cacheManager:    cache.NewManager(opts.Logger.WithComponent(applog.ComponentCache).Logger),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimit}),
		detector:        security.NewDetector(),
		appMetrics:      &appMetrics{uptime: time.Now()},
	}
	s.cacheManager.Register(s.pages)
	s.tracer = trace.NewMiddleware(opts.Logger, s.detector.ExtractClientIP)
	s.Handler = s.routes(opts.Logger, opts.BrandPages)

	return s, nil
}

func (s *Server) routes(base *applog.Logger, brandPages bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(applog.Middleware(base))
	r.Use(s.tracer.Middleware)
	r.Use(s.detector.Middleware)
	headers := security.DefaultHeadersConfig()
	if brandPages {
		headers.CSP = security.BuildCSP(branding.SignOutHandlerHash())
	}
	r.Use(security.NewHeadersMiddleware(headers).Middleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", s.handleMetrics)

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		r.With(security.StaticAssetMiddleware(3600)).
			Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", "error", err)
	}

	r.Group(func(r chi.Router) {
		if brandPages {
			r.Use(branding.Middleware(s.injector, s.detector.FromTrustedProxy, base.WithComponent(applog.ComponentBranding).Logger))
		}
		r.Get("/", s.handleIndex)
		r.Get("/ui/tab/{tab}", s.handleTab)
		r.Get("/ui/findings/{index}", s.handleFinding)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard/{resource}", s.handleDashboardAPI)
		r.With(s.rateLimiter.Middleware(s.detector.ExtractClientIP, s.onRateLimited)).
			Post("/brand", s.handleBrand)
	})

	return r
}

// Run drives the cache sweeper and the rate limiter cleanup until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.cacheManager.Run(ctx, time.Minute) })
	g.Go(func() error { return s.rateLimiter.Run(ctx) })
	return g.Wait()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func (s *Server) onRateLimited(w http.ResponseWriter, r *http.Request) {
	s.logger.WithComponent(applog.ComponentRateLimit).WarnContext(r.Context(), "Rate limit exceeded",
		applog.FieldClientIP, s.detector.ExtractClientIP(r),
		applog.FieldPath, r.URL.Path)
	writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
}

// years returns the selectable fiscal years, newest last.
func (s *Server) years(ctx context.Context) ([]int, error) {
	years, err := s.reader.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	if len(years) == 0 {
		return nil, dataset.ErrYearNotFound
	}
	return years, nil
}

func (s *Server) defaultState(years []int) dashboard.State {
	year := dataset.DefaultYear
	if len(years) > 0 && !slices.Contains(years, year) {
		year = years[len(years)-1]
	}
	return dashboard.DefaultState(year, s.defaultLang, s.defaultCurrency)
}

// render returns the memoized view and page model for st.
func (s *Server) render(ctx context.Context, st dashboard.State, years []int) (rendered, error) {
	out, cached, err := s.pages.GetOrLoad(st.Key(), func() (rendered, error) {
		s.logger.DebugContext(ctx, "Dashboard cache miss", applog.FieldCacheKey, st.Key())
		cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rec, err := s.reader.ReadYear(cctx, st.Year)
		if err != nil {
			return rendered{}, err
		}
		v := dashboard.New(rec, st)
		s.appMetrics.pagesRendered.Add(1)
		return rendered{view: v, page: v.Page(years)}, nil
	})
	if err != nil {
		return rendered{}, err
	}
	s.structLog.LogViewRendered(ctx, st.Year, string(st.Currency), string(st.Language), string(st.Tab), cached)
	return out, nil
}
