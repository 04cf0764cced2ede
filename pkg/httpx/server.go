package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultRequestsPerMinute = 100
	defaultMaxBodyBytes      = 1 << 20
	handlerTimeout           = 30 * time.Second
)

// DefaultCSP forbids every non-same-origin resource.
const DefaultCSP = "default-src 'self'"

// SwaggerCSP additionally lets the Swagger UI run its inline bootstrap.
const SwaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list; "*" allows any origin.
	CORSAllowedOrigins string
	// RequestsPerMinute caps requests per rate-limit key. Zero means 100.
	RequestsPerMinute int
	// RateLimitBySharer keys the limiter on X-Sharer-User-Id when the header
	// is present and falls back to the client IP otherwise.
	RateLimitBySharer bool
	// MaxBodyBytes caps request bodies. Zero means 1 MiB.
	MaxBodyBytes int64
	// ContentSecurityPolicy defaults to DefaultCSP.
	ContentSecurityPolicy string
}

// Middlewares are the process-specific layers NewRouter installs ahead of the
// shared stack. Nil entries are skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logging  func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux with the middleware stack shared by the gateway
// and the server, outermost first:
//
//	Recovery, Sentry, RequestID, Tracing, Logging, RealIP, rate limit,
//	CORS, body limit, 30 s timeout, security headers.
//
// Unknown routes and methods answer with the JSON error body.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	csp := cfg.ContentSecurityPolicy
	if csp == "" {
		csp = DefaultCSP
	}
	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: csp,
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=()",
		IsDevelopment:         cfg.IsDevelopment,
	})

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r := chi.NewRouter()
	for _, m := range []func(http.Handler) http.Handler{mw.Recovery, mw.Sentry} {
		if m != nil {
			r.Use(m)
		}
	}
	r.Use(middleware.RequestID)
	for _, m := range []func(http.Handler) http.Handler{mw.Tracing, mw.Logging} {
		if m != nil {
			r.Use(m)
		}
	}
	r.Use(
		middleware.RealIP,
		RateLimit(cfg),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(maxBody),
		middleware.Timeout(handlerTimeout),
		sec.Handler,
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		JSONError(w, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		JSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// RateLimit returns the httprate limiter described by cfg. Rejected requests
// get a 429 with the JSON error body.
func RateLimit(cfg ServerConfig) func(http.Handler) http.Handler {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}
	key := httprate.KeyByRealIP
	if cfg.RateLimitBySharer {
		key = sharerOrIP
	}
	return httprate.Limit(rpm, time.Minute,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			JSONError(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}

func sharerOrIP(r *http.Request) (string, error) {
	if id := strings.TrimSpace(r.Header.Get(SharerHeader)); id != "" {
		return "sharer:" + id, nil
	}
	return httprate.KeyByRealIP(r)
}

// CORSMiddleware allows the comma-separated origins and the X-Sharer-User-Id header.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(allowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id", SharerHeader},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

func splitOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit wraps the body in http.MaxBytesReader. Reads past maxBytes
// fail with *http.MaxBytesError, which the validator maps to 413.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server whose write timeout outlasts the handler
// deadline so timed-out handlers can still respond.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      handlerTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
