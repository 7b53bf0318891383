package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/StayBooker/internal/cache"
	"github.com/stpnv0/StayBooker/internal/config"
	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/idempotency"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/notification"
	"github.com/stpnv0/StayBooker/internal/repository"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stpnv0/StayBooker/internal/scheduler"
	"github.com/stpnv0/StayBooker/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg          *config.Config
	log          logger.Logger
	db           *dbpg.DB
	rdb          *redis.Client
	listingCache *cache.ListingCache
	publisher    *notification.AMQPPublisher
	httpServer   *http.Server
	scheduler    *scheduler.Scheduler
}

// Services groups the application services for callers outside the HTTP
// stack, such as the seeder.
type Services struct {
	Maintenance  *repository.MaintenanceRepository
	Users        *service.UserService
	Listings     *service.ListingService
	Availability *service.AvailabilityService
	Bookings     *service.BookingService
	Reviews      *service.ReviewService
}

func New(cfg *config.Config) (*App, error) {
	app, err := newBase(cfg)
	if err != nil {
		return nil, err
	}

	if err = app.initHTTP(); err != nil {
		return nil, fmt.Errorf("init http: %w", err)
	}

	return app, nil
}

// NewWithServices opens the backing stores and builds the services without
// the HTTP server. The caller must Close the returned App.
func NewWithServices(cfg *config.Config) (*App, *Services, error) {
	app, err := newBase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app, app.services(), nil
}

func (a *App) Logger() logger.Logger {
	return a.log
}

func newBase(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"StayBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	app.publisher, err = notification.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, app.log)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("init publisher: %w", err)
	}

	app.listingCache = cache.NewListingCache(app.rdb, cache.Options{
		TTL:       cfg.Cache.TTL,
		LocalTTL:  cfg.Cache.LocalTTL,
		LocalSize: cfg.Cache.LocalSize,
	}, app.log)

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis connects the shared cache. Redis is optional: without it the
// listing cache stays process-local and idempotency relies on the database.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr is empty, using local cache only")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "redis unavailable, using local cache only",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = client.Close()
		return
	}

	a.rdb = client
	a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
}

func (a *App) services() *Services {
	listingRepo := repository.NewListingRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	locks := idempotency.NewRedisStore(a.rdb, a.cfg.Idempotency.TTL, a.log)

	return &Services{
		Maintenance:  repository.NewMaintenanceRepo(a.db),
		Users:        service.NewUserService(userRepo),
		Listings:     service.NewListingService(listingRepo, reviewRepo, a.listingCache, a.log),
		Availability: service.NewAvailabilityService(listingRepo, bookingRepo),
		Bookings:     service.NewBookingService(bookingRepo, listingRepo, locks, a.publisher, a.cfg.Booking.Policy(), a.log),
		Reviews:      service.NewReviewService(reviewRepo, bookingRepo, listingRepo, a.listingCache, a.publisher, a.log),
	}
}

func (a *App) initHTTP() error {
	svc := a.services()

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			svc.Bookings,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(svc.Listings, svc.Availability, svc.Bookings, svc.Reviews, svc.Users, handler.TokenConfig{
		Secret: a.cfg.Auth.JWTSecret,
		TTL:    a.cfg.Auth.TokenTTL,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:        middleware.Auth(a.cfg.Auth.JWTSecret),
			RequireAuth: middleware.RequireAuth(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.HTTP.CORSOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	return a.Close()
}

// Close releases every backing connection that was opened. It is safe on a
// partially built App.
func (a *App) Close() error {
	if a.listingCache != nil {
		a.listingCache.Stop()
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close publisher",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "close redis",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
