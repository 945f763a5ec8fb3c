package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/anjabuckley/wortwunder-backend/internal/config"
	"github.com/anjabuckley/wortwunder-backend/internal/handlers"
	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
	"github.com/anjabuckley/wortwunder-backend/internal/migrations"
	"github.com/anjabuckley/wortwunder-backend/internal/repositories"
	"github.com/anjabuckley/wortwunder-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wortwunder API
// @version 1.0.0
// @description Backend for the wortwunder German vocabulary trainer
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, and HTTP server. It
// applies pending migrations, sets up routes, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Log.Fatal("failed to set migration dialect:", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("failed to apply migrations:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize JWT service
	jwtService := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	vocabularyReadRepo := repositories.NewVocabularyReadRepository(db)
	vocabularyWriteRepo := repositories.NewVocabularyWriteRepository(db)
	wordGroupReadRepo := repositories.NewWordGroupReadRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db)
	studySessionReadRepo := repositories.NewStudySessionReadRepository(db)
	studySessionWriteRepo := repositories.NewStudySessionWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, sessionRepo)
	vocabularyService := services.NewVocabularyService(vocabularyReadRepo, vocabularyWriteRepo, wordGroupReadRepo)
	favoritesService := services.NewFavoritesService(favoriteReadRepo, favoriteWriteRepo)
	studySessionService := services.NewStudySessionService(studySessionReadRepo, studySessionWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/login", handlers.NewLoginHandler(authService))
	r.Get("/api/vocabulary", handlers.NewListVocabularyHandler(vocabularyService))
	r.Get("/api/word-groups", handlers.NewListWordGroupsHandler(vocabularyService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService, sessionRepo))
		r.Post("/api/logout", handlers.NewLogoutHandler(authService))
		r.Get("/api/user", handlers.NewCurrentUserHandler(authService))
		r.Post("/api/vocabulary/import", handlers.NewImportVocabularyHandler(vocabularyService))
		r.Get("/api/favorites", handlers.NewListFavoritesHandler(favoritesService))
		r.Post("/api/favorites/{vocabulary_id}", handlers.NewAddFavoriteHandler(favoritesService))
		r.Delete("/api/favorites/{vocabulary_id}", handlers.NewRemoveFavoriteHandler(favoritesService))
		r.Post("/api/study-sessions", handlers.NewRecordStudySessionHandler(studySessionService))
		r.Get("/api/study-sessions/count", handlers.NewCountStudySessionsHandler(studySessionService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
