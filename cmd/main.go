package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/ive-had-worse/docs"
	"github.com/sbilibin2017/ive-had-worse/internal/database"
	"github.com/sbilibin2017/ive-had-worse/internal/facades"
	"github.com/sbilibin2017/ive-had-worse/internal/handlers"
	"github.com/sbilibin2017/ive-had-worse/internal/health"
	"github.com/sbilibin2017/ive-had-worse/internal/jwt"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/metrics"
	"github.com/sbilibin2017/ive-had-worse/internal/middlewares"
	"github.com/sbilibin2017/ive-had-worse/internal/repositories"
	"github.com/sbilibin2017/ive-had-worse/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	healthCheckInterval = 10 * time.Second
	healthCheckTimeout  = 2 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	MigrateOnStart bool

	RedisHost           string
	RedisPort           int
	RedisDB             int
	RedisPassword       string
	RedisPoolSize       int
	RedisMinIdleConns   int
	RedisLeaderboardTTL time.Duration

	KafkaBrokers   []string
	KafkaVoteTopic string

	GRPCHealthPort string

	JWTSecretKey string
	JWTExp       time.Duration
	BcryptCost   int

	RateLimitRPS   float64
	RateLimitBurst int
}

// @title I've Had Worse API
// @version 1.0.0
// @description Anonymous bad-date stories with binary votes and a leaderboard
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, healthcheck := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if healthcheck {
		if err := probeHealth(context.Background(), net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort)); err != nil {
			log.Fatalf("health check failed: %v", err)
		}
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path and
// whether only a health probe was requested.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	hc := flag.Bool("healthcheck", false, "Query the gRPC health service and exit")
	flag.Parse()
	return *c, *hc
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "true")); err != nil {
		err = fmt.Errorf("MIGRATE_ON_START: %w", err)
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var ttl int
	if ttl, err = getInt("REDIS_LEADERBOARD_TTL_SECOND", "30"); err != nil {
		return
	}
	cfg.RedisLeaderboardTTL = time.Duration(ttl) * time.Second

	// Kafka config, empty brokers disable vote events
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaVoteTopic = getEnv("KAFKA_VOTE_TOPIC", "vote.cast")

	// gRPC config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// Auth config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExp int
	if jwtExp, err = getInt("JWT_EXP_SECOND", "2592000"); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", "12"); err != nil {
		return
	}

	// Rate limit config
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		err = fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		return
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", "20"); err != nil {
		return
	}

	return
}

// probeHealth asks the running service for its overall status.
func probeHealth(ctx context.Context, addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	serving, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)).IsServing(ctx, "")
	if err != nil {
		return err
	}
	if !serving {
		return errors.New("service is not serving")
	}
	return nil
}

// run initializes the logger, database, Redis, Kafka, the health server and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := database.DSN(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	if cfg.MigrateOnStart {
		if err := database.RunMigrations(dsn); err != nil {
			return err
		}
		logger.Log.Info("Migrations applied")
	}

	db, err := database.Connect(ctx, dsn, cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for vote events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaVoteTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka vote events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaVoteTopic)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	storyReadRepo := repositories.NewStoryReadRepository(db, txGetter)
	storyWriteRepo := repositories.NewStoryWriteRepository(db, txGetter)
	voteReadRepo := repositories.NewVoteReadRepository(db, txGetter)
	voteWriteRepo := repositories.NewVoteWriteRepository(db, txGetter)
	leaderboardCache := repositories.NewLeaderboardCacheRepository(rdb, cfg.RedisLeaderboardTTL,
		repositories.WithAfterCommit(middlewares.AfterCommit),
	)

	// Initialize services
	accountService := services.NewAccountService(userReadRepo, userWriteRepo, tokens,
		services.WithBcryptCost(cfg.BcryptCost),
		services.WithAccountRecorder(collector),
	)
	storyService := services.NewStoryService(userReadRepo, storyReadRepo, storyWriteRepo, voteReadRepo, leaderboardCache, collector)
	voteService := services.NewVoteService(userReadRepo, storyWriteRepo, voteReadRepo, voteWriteRepo, kafkaWriter, leaderboardCache, collector)
	leaderboardService := services.NewLeaderboardService(storyReadRepo, voteReadRepo, leaderboardCache)

	// Health server
	pingRedis := func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
	hs := grpchealth.NewServer()
	checker := health.NewChecker(hs, healthCheckTimeout, map[string]health.PingFunc{
		"postgres": db.PingContext,
		"redis":    pingRedis,
	})
	grpcServer := health.NewServer(hs)
	grpcLis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC health: %w", err)
	}

	// Rate limiter
	limiter := middlewares.NewRateLimiter(middlewares.RateLimiterConfig{
		Rate:            rate.Limit(cfg.RateLimitRPS),
		Burst:           cfg.RateLimitBurst,
		CleanupInterval: middlewares.DefaultRateLimiterConfig().CleanupInterval,
	})
	defer limiter.Stop()

	// Setup router
	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	r := newRouter(db, tokens, limiter, collector, registry, routes{
		createAccount:  handlers.NewCreateAccountHandler(accountService),
		login:          handlers.NewLoginHandler(accountService),
		changePassword: handlers.NewChangePasswordHandler(accountService),
		post:           handlers.NewPostHandler(storyService),
		deleteStory:    handlers.NewDeleteStoryHandler(storyService),
		fetch:          handlers.NewFetchHandler(storyService),
		myStories:      handlers.NewMyStoriesHandler(storyService),
		myVotes:        handlers.NewMyVotesHandler(storyService),
		vote:           handlers.NewVoteHandler(voteService),
		leaderboard:    handlers.NewLeaderboardHandler(leaderboardService),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go checker.Run(ctxShutdown, healthCheckInterval)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// routes holds the API handlers mounted under /api.
type routes struct {
	createAccount  http.HandlerFunc
	login          http.HandlerFunc
	changePassword http.HandlerFunc
	post           http.HandlerFunc
	deleteStory    http.HandlerFunc
	fetch          http.HandlerFunc
	myStories      http.HandlerFunc
	myVotes        http.HandlerFunc
	vote           http.HandlerFunc
	leaderboard    http.HandlerFunc
}

// newRouter mounts the API, metrics and swagger routes. Every mutating API
// route runs inside one database transaction.
func newRouter(
	db *sqlx.DB,
	tokens middlewares.Tokener,
	limiter *middlewares.RateLimiter,
	observer middlewares.RequestObserver,
	gatherer prometheus.Gatherer,
	h routes,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RecoverMiddleware)
	r.Use(middlewares.MetricsMiddleware(observer))

	r.Handle("/metrics", metrics.Handler(gatherer))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.With(middlewares.LenientSessionMiddleware(tokens)).Get("/leaderboard", h.leaderboard)

		// Credentials in the body replace whatever token the client still holds.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/create-account", h.createAccount)
			r.Post("/login", h.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.SessionMiddleware(tokens))
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/change-password", h.changePassword)
			r.Post("/post", h.post)
			r.Post("/delete-story", h.deleteStory)
			r.Post("/fetch", h.fetch)
			r.Post("/my-stories", h.myStories)
			r.Post("/my-votes", h.myVotes)
			r.Post("/vote", h.vote)
		})
	})

	return r
}
