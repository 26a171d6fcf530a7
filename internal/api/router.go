package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-wave-defense/internal/leaderboard"
)

// RouterConfig contains the dependencies of the HTTP router.
type RouterConfig struct {
	// Store answers leaderboard queries (required)
	Store leaderboard.Store

	// RateLimiter is optional; if nil, one is created from RateLimitConfig
	// and the caller cannot Stop it.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is used only if RateLimiter is nil. Nil means DefaultRateLimitConfig.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins lists allowed origins. Nil allows any origin.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful in tests).
	DisableLogging bool
}

type routerHandlers struct {
	store leaderboard.Store
}

// NewRouter constructs the HTTP router with middleware and routes.
//
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
//	resp, _ := http.Get(ts.URL + "/api/leaderboard?limit=5")
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Лимит до CORS, чтобы отбрасывать лишние запросы раньше.
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h := &routerHandlers{store: cfg.Store}

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", h.handleGetLeaderboard)
	})
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
