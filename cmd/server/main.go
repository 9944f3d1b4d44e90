package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prefiction/backend/internal/config"
	"github.com/prefiction/backend/internal/handler"
	"github.com/prefiction/backend/internal/logging"
	"github.com/prefiction/backend/internal/repository"
	"github.com/prefiction/backend/internal/service"
	"github.com/prefiction/backend/pkg/auth"
)

const sweepInterval = 10 * time.Minute

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// Postgres when a DSN is configured, local SQLite otherwise.
	var submissionRepo repository.SubmissionRepository
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		submissionRepo = repository.NewPgSubmissionRepository(pool)
		slog.Info("using postgres backend")
	} else {
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			logging.Fatal("failed to open sqlite database", "error", err, "path", cfg.SQLitePath)
		}
		defer db.Close()
		// The schema is idempotent; applying it here keeps the local
		// backend usable without a separate migrate run.
		if _, err := db.ExecContext(ctx, repository.SubmissionSchemaSQLite); err != nil {
			logging.Fatal("failed to apply sqlite schema", "error", err)
		}
		submissionRepo = repository.NewSQLiteSubmissionRepository(db)
		slog.Info("using sqlite backend", "path", cfg.SQLitePath)
	}

	sessionStore := repository.NewMemorySessionStore()
	submissionService := service.NewSubmissionService(submissionRepo)
	sessionService := service.NewSessionService(sessionStore, auth.SessionTTL)

	submissionHandler := handler.NewSubmissionHandler(submissionService)
	adminAuthHandler := handler.NewAdminAuthHandler(sessionService, cfg.AdminPassword, cfg.Production())
	catalogHandler := handler.NewCatalogHandler()
	healthHandler := handler.NewHealthHandler(submissionRepo)

	requireAdmin := auth.RequireAdmin(cfg.AdminAPIKey, sessionService)
	contactLimit := httprate.LimitByIP(cfg.ContactRateLimit, time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /_health", healthHandler.Health)
	mux.Handle("POST /api/contact", contactLimit(http.HandlerFunc(submissionHandler.Submit)))

	mux.HandleFunc("POST /admin/verify", adminAuthHandler.Verify)
	mux.HandleFunc("POST /admin/logout", adminAuthHandler.Logout)
	mux.Handle("GET /admin/submissions", requireAdmin(http.HandlerFunc(submissionHandler.AdminList)))
	// Some hosts block GET requests to API-shaped paths; the POST mirror
	// has identical semantics.
	mux.Handle("POST /admin/submissions", requireAdmin(http.HandlerFunc(submissionHandler.AdminList)))
	mux.Handle("DELETE /admin/submissions/{id}", requireAdmin(http.HandlerFunc(submissionHandler.Delete)))

	mux.HandleFunc("GET /api/catalog/services", catalogHandler.Services)
	mux.HandleFunc("GET /api/catalog/audiences", catalogHandler.Audiences)
	mux.HandleFunc("GET /api/catalog/case-studies", catalogHandler.CaseStudies)

	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
		slog.Info("serving static files", "dir", cfg.StaticDir)
	}

	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	chain := handler.RequestID(
		handler.RequestLogger(
			corsMiddleware(
				handler.SecurityHeaders(mux))))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepSessions(sweepCtx, sessionService)

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// sweepSessions periodically evicts expired admin sessions. Expiry is also
// enforced lazily on access; the sweeper just keeps abandoned sessions
// from accumulating.
func sweepSessions(ctx context.Context, sessions *service.SessionService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(ctx); n > 0 {
				slog.Debug("expired admin sessions evicted", "count", n)
			}
		}
	}
}
