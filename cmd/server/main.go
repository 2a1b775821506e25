package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/precify/backend/internal/application/catalog"
	identityapp "github.com/precify/backend/internal/application/identity"
	marketplaceapp "github.com/precify/backend/internal/application/marketplace"
	pricingapp "github.com/precify/backend/internal/application/pricing"
	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/infrastructure/auth"
	"github.com/precify/backend/internal/infrastructure/config"
	"github.com/precify/backend/internal/infrastructure/ecommerce"
	"github.com/precify/backend/internal/infrastructure/logger"
	"github.com/precify/backend/internal/infrastructure/persistence"
	"github.com/precify/backend/internal/infrastructure/scheduler"
	"github.com/precify/backend/internal/infrastructure/telemetry"
	"github.com/precify/backend/internal/interfaces/http/handler"
	"github.com/precify/backend/internal/interfaces/http/middleware"
	"github.com/precify/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.NewFromAppConfig(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Precify Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Telemetry: tracer provider and continuous profiler. Both are
	// no-ops when disabled in config.
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.ConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	if tracerProvider.IsEnabled() && profiler.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	// Database with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	materialRepo := persistence.NewGormMaterialRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	marketplaceRepo := persistence.NewGormMarketplaceRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	chargeRepo := persistence.NewGormCustomChargeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Token blacklist: Redis when configured, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Using Redis token blacklist",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis not configured, using in-memory token blacklist")
	}

	// External fee providers
	var feeProviders []marketplace.FeeProvider
	meliAdapter, err := ecommerce.NewMercadoLivreAdapter(cfg.MercadoLivre)
	if err != nil {
		log.Fatal("Failed to initialize Mercado Livre adapter", zap.Error(err))
	}
	feeProviders = append(feeProviders, meliAdapter)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	}, log)
	materialService := catalogapp.NewMaterialService(materialRepo)
	productService := catalogapp.NewProductService(productRepo, materialRepo)
	marketplaceService := marketplaceapp.NewMarketplaceService(marketplaceRepo, feeProviders...)
	settingsService := pricingapp.NewSettingsService(settingsRepo)
	chargeService := pricingapp.NewChargeService(chargeRepo)
	quoteService := pricingapp.NewQuoteService(productRepo, materialRepo, marketplaceRepo, settingsRepo, chargeRepo)

	// Periodic fee sync for platform-bound marketplaces
	if cfg.FeeSync.Enabled {
		feeSyncScheduler := scheduler.NewFeeSyncScheduler(scheduler.FeeSyncConfig{
			Interval:      cfg.FeeSync.Interval,
			JobTimeout:    cfg.FeeSync.JobTimeout,
			MaxConcurrent: cfg.FeeSync.MaxConcurrent,
		}, marketplaceRepo, marketplaceService, log)
		if err := feeSyncScheduler.Start(); err != nil {
			log.Fatal("Failed to start fee sync scheduler", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := feeSyncScheduler.Stop(ctx); err != nil {
				log.Error("Error stopping fee sync scheduler", zap.Error(err))
			}
		}()
	}

	// Gin setup
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// After JWT so tenant and user attributes reach the span
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewMaterialHandler(materialService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewMarketplaceHandler(marketplaceService)).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewChargeHandler(chargeService)).
		Register(handler.NewQuoteHandler(quoteService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
