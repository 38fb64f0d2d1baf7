package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/dating-app/internal/facades"
	"github.com/sbilibin2017/dating-app/internal/handlers"
	"github.com/sbilibin2017/dating-app/internal/jwt"
	"github.com/sbilibin2017/dating-app/internal/logger"
	"github.com/sbilibin2017/dating-app/internal/middlewares"
	"github.com/sbilibin2017/dating-app/internal/migrations"
	"github.com/sbilibin2017/dating-app/internal/repositories"
	"github.com/sbilibin2017/dating-app/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/dating-app/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title dating-app API
// @version 1.0.0
// @description Backend service for member profiles and photo collections
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
		s3Endpoint, s3Region, s3AccessKey, s3SecretKey, s3Bucket,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheExpSecond,
		kafkaBrokers, kafkaTopic,
		s3Endpoint, s3Region, s3AccessKey, s3SecretKey, s3Bucket,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	s3Endpoint, s3Region, s3AccessKey, s3SecretKey, s3Bucket string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "dating")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheExpSecond, err = strconv.Atoi(getEnv("PROFILE_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "member-activity")

	// S3 image store config
	s3Endpoint = getEnv("S3_ENDPOINT", "http://localhost:9000")
	s3Region = getEnv("S3_REGION", "us-east-1")
	s3AccessKey = getEnv("S3_ACCESS_KEY", "minioadmin")
	s3SecretKey = getEnv("S3_SECRET_KEY", "minioadmin")
	s3Bucket = getEnv("S3_BUCKET", "photos")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, S3 client, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheExpSecond int,
	kafkaBrokers, kafkaTopic string,
	s3Endpoint, s3Region, s3AccessKey, s3SecretKey, s3Bucket string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events, optional
	var eventWriter *kafka.Writer
	if kafkaBrokers != "" {
		eventWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer eventWriter.Close()
	}

	// S3 image store
	s3Client, err := facades.NewS3Client(ctx, s3Endpoint, s3Region, s3AccessKey, s3SecretKey)
	if err != nil {
		logger.Log.Fatal("S3 client error:", err)
	}
	imageStore := facades.NewImageStoreS3Facade(s3Client, s3Endpoint, s3Bucket)

	// Initialize JWT service
	tokenService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	photoReadRepo := repositories.NewPhotoReadRepository(db)
	photoWriteRepo := repositories.NewPhotoWriteRepository(db)
	profileCache := repositories.NewProfileCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)

	// Initialize services
	var events services.EventWriter
	if eventWriter != nil {
		events = eventWriter
	}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService, events)
	userService := services.NewUserService(userReadRepo, userWriteRepo, profileCache)
	photoService := services.NewPhotoService(photoReadRepo, photoWriteRepo, imageStore, profileCache, events)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService)
	addPhotoHandler := handlers.NewAddPhotoHandler(photoService)
	getPhotoHandler := handlers.NewGetPhotoHandler(photoService)
	setMainPhotoHandler := handlers.NewSetMainPhotoHandler(photoService)
	deletePhotoHandler := handlers.NewDeletePhotoHandler(photoService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))
		r.Use(middlewares.ActivityMiddleware(userWriteRepo))

		r.Get("/api/users", listUsersHandler)
		r.Get("/api/users/{userId}", getUserHandler)
		r.Put("/api/users/{userId}", updateUserHandler)
		r.Post("/api/users/{userId}/photos", addPhotoHandler)
		r.Get("/api/users/{userId}/photos/{id}", getPhotoHandler)
		r.Post("/api/users/{userId}/photos/{id}/setMain", setMainPhotoHandler)
		r.Delete("/api/users/{userId}/photos/{id}", deletePhotoHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
