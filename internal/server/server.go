package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/princejain-2004/RESUME-EXPERT/internal/config"
	"github.com/princejain-2004/RESUME-EXPERT/internal/db"
	"github.com/princejain-2004/RESUME-EXPERT/internal/metrics"
	"github.com/princejain-2004/RESUME-EXPERT/internal/rendering"
	"github.com/princejain-2004/RESUME-EXPERT/internal/server/middleware"
	"github.com/princejain-2004/RESUME-EXPERT/internal/server/ratelimit"
	"github.com/princejain-2004/RESUME-EXPERT/internal/uploads"
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	handler       http.Handler
	cfg           *config.Config
	store         Store
	closeStore    func()
	rateLimiter   *ratelimit.Limiter
	jwtService    *JWTService
	userService   *UserService
	resumeService *ResumeService
	authHandler   *AuthHandler
	files         *uploads.Store
	exporter      Exporter
	metrics       *metrics.Manager
}

// Dependencies are the collaborators a Server is built from.
type Dependencies struct {
	Store     Store
	JWT       *config.JWTConfig
	Passwords *config.PasswordConfig
	Uploads   *uploads.Store   // nil disables uploads and /uploads/
	Exporter  Exporter         // nil disables PDF export
	Metrics   *metrics.Manager // nil disables /metrics
}

// New connects to the database, prepares storage and builds the server.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (RESUME_DATABASE_URL or DATABASE_URL)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	files, err := uploads.NewStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		database.Close()
		return nil, err
	}

	s := NewWithDependencies(cfg, Dependencies{
		Store:     database,
		JWT:       jwtConfig,
		Passwords: passwordConfig,
		Uploads:   files,
		Exporter:  rendering.NewPDFExporter(cfg.ChromePath, cfg.ExportTimeout()),
		Metrics:   metrics.NewManager(metrics.WithMetricsEnabled(cfg.MetricsEnabled)),
	})
	s.closeStore = database.Close
	return s, nil
}

// NewWithDependencies builds a server around existing collaborators.
func NewWithDependencies(cfg *config.Config, deps Dependencies) *Server {
	s := &Server{
		cfg:      cfg,
		store:    deps.Store,
		files:    deps.Uploads,
		exporter: deps.Exporter,
		metrics:  deps.Metrics,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.Config{
		Enabled:         cfg.RateLimitEnabled,
		DefaultLimit:    cfg.RateLimitPerMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       cfg.Whitelist(),
		Rules:           ratelimit.DefaultRules(),
	})

	s.userService = NewUserService(deps.Store, deps.Passwords)
	s.resumeService = NewResumeService(deps.Store, deps.Uploads, deps.Metrics, cfg.MaxUploadBytes())
	s.jwtService = NewJWTService(deps.JWT)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	protected := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	auth := func(h http.HandlerFunc) http.Handler { return protected(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metrics.Enabled() {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	if s.files != nil {
		mux.Handle("GET "+uploads.URLPrefix, s.files.Handler())
	}

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", auth(s.authHandler.Me))
	mux.Handle("PUT /auth/password", auth(s.authHandler.UpdatePassword))

	// Resumes
	mux.Handle("POST /resumes", auth(s.handleCreateResume))
	mux.Handle("GET /resumes", auth(s.handleListResumes))
	mux.Handle("GET /resumes/{id}", auth(s.handleGetResume))
	mux.Handle("GET /resumes/{id}/draft", auth(s.handleGetResumeDraft))
	mux.Handle("PUT /resumes/{id}", auth(s.handleUpdateResume))
	mux.Handle("DELETE /resumes/{id}", auth(s.handleDeleteResume))
	mux.Handle("PUT /resumes/{id}/upload-images", auth(s.handleUploadImages))
	mux.Handle("GET /resumes/{id}/export.pdf", auth(s.handleExportPDF))
	mux.Handle("GET /resumes/{id}/preview.html", auth(s.handlePreviewHTML))
	mux.Handle("GET /resumes/{id}/preview.txt", auth(s.handlePreviewText))

	// Form wizard
	mux.Handle("GET /wizard/steps", auth(s.handleListSteps))
	mux.Handle("POST /wizard/validate", auth(s.handleValidateStep))
	mux.Handle("POST /wizard/advance", auth(s.handleAdvance))
	mux.Handle("POST /wizard/retreat", auth(s.handleRetreat))

	s.handler = s.withLogging(s.withRateLimit(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ExportTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close releases the rate limiter and the database pool.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.closeStore != nil {
		s.closeStore()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.Method, r.URL.Path)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.metrics.RecordRateLimited(r.Method)
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// withLogging adds request logging and HTTP metrics
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		// The mux sets Pattern on the request it routes; unmatched paths
		// share one label.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.RecordHTTPRequest(route, r.Method, rec.status, elapsed)
		log.Printf("[%s] %s %s %d in %v", r.Method, r.URL.Path, r.RemoteAddr, rec.status, elapsed)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		log.Printf("[health] database unreachable: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; proxies are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		retry := max(1, int(info.RetryAfter.Seconds()))
		response["retry_after"] = retry
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	writeJSON(w, http.StatusTooManyRequests, response)
}
