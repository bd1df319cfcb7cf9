package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"pengasuh_backend/internal/config"
	"pengasuh_backend/internal/controller"
	"pengasuh_backend/internal/repository"
	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"
	"pengasuh_backend/pkg/configwatcher"
	"pengasuh_backend/pkg/database"
	"pengasuh_backend/pkg/logger"
	"pengasuh_backend/pkg/monitoring"
	"pengasuh_backend/pkg/security"
	"pengasuh_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  service.KeyValueStore

	// ConfigFile is watched for changes while the server runs.
	ConfigFile string

	tracer          *sdktrace.TracerProvider
	background      context.Context
	stopBackground  context.CancelFunc
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	result   *repository.ResultRepository
	media    *repository.MediaRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	storage  *service.StorageService
	question *service.QuestionService
	stress   *service.StressService
	quiz     *service.QuizService
	media    *service.MediaService
	history  *service.HistoryService
}

type controllers struct {
	auth    *controller.AuthController
	user    *controller.UserController
	stress  *controller.StressController
	quiz    *controller.QuizController
	media   *controller.MediaController
	history *controller.HistoryController
	admin   *controller.AdminController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		result:   repository.NewResultRepository(db),
		media:    repository.NewMediaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, store service.KeyValueStore) *services {
	log := logger.Log
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage, log.Named("storage"))
	s.auth = service.NewAuthService(repos.user, store, cfg, log.Named("auth"))
	s.user = service.NewUserService(repos.user, s.storage, log.Named("user"))
	s.question = service.NewQuestionService(repos.question, store, cfg.Cache.QuestionTTL, log.Named("question"))
	s.stress = service.NewStressService(s.question, repos.result, log.Named("stress"))
	s.quiz = service.NewQuizService(s.question, repos.result, log.Named("quiz"))
	s.media = service.NewMediaService(repos.media, s.storage, log.Named("media"))
	s.history = service.NewHistoryService(repos.result, log.Named("history"))

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		user:    controller.NewUserController(s.user),
		stress:  controller.NewStressController(s.stress),
		quiz:    controller.NewQuizController(s.quiz),
		media:   controller.NewMediaController(s.media),
		history: controller.NewHistoryController(s.history, s.auth),
		admin:   controller.NewAdminController(s.question),
		health:  controller.NewHealthController(a.DB, a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(a.background, cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// initStore connects to Redis. In debug mode an unreachable Redis is replaced
// by an in-process store so the API can run without it.
func (a *App) initStore(cfg *config.Config) error {
	rdb, err := database.InitRedis(&cfg.Redis)
	if err == nil {
		a.Redis = rdb
		a.Store = service.NewRedisStore(rdb)
		return nil
	}
	if cfg.Server.Mode != gin.DebugMode {
		return fmt.Errorf("initialize redis: %w", err)
	}
	logger.Log.Warn("Redis unavailable, using in-memory store", zap.Error(err))
	a.Store = service.NewMemoryStore()
	return nil
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	migrate := cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode, migrate)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	app := &App{
		Config:     cfg,
		DB:         db,
		ConfigFile: filepath.Join("configs", "config.yaml"),
	}
	app.background, app.stopBackground = context.WithCancel(context.Background())

	if cfg.SeedFile != "" {
		if err := database.Seed(db, cfg.SeedFile); err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
		}
		logger.Log.Info("Seed data loaded", zap.String("file", cfg.SeedFile))
	}

	if cfg.MigrateOnly {
		return app, nil
	}

	if err := app.initStore(cfg); err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	monitoring.Init()

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, app.Store)
	controllers := app.initControllers(services)

	router := gin.Default()
	router.MaxMultipartMemory = util.MaxUploadSize
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, services.auth)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app, nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := configwatcher.WatchConfig(ctx, a.ConfigFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("listen", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close stops background workers and releases the tracer, Redis and database
// handles.
func (a *App) Close(ctx context.Context) {
	if a.stopBackground != nil {
		a.stopBackground()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = logger.Log.Sync()
}

// Fatal logs err and exits with status 1.
func Fatal(err error) {
	logger.Log.Error("Startup failed", zap.Error(err))
	_ = logger.Log.Sync()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
