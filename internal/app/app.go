package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/ClassBooker/internal/auth"
	"github.com/stpnv0/ClassBooker/internal/cache"
	"github.com/stpnv0/ClassBooker/internal/config"
	"github.com/stpnv0/ClassBooker/internal/handler"
	"github.com/stpnv0/ClassBooker/internal/middleware"
	"github.com/stpnv0/ClassBooker/internal/notification"
	"github.com/stpnv0/ClassBooker/internal/router"
	"github.com/stpnv0/ClassBooker/internal/scheduler"
	"github.com/stpnv0/ClassBooker/internal/service"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
	"github.com/stpnv0/ClassBooker/internal/studioapi"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type store interface {
	ports.ClassCache
	ports.MemberCache
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	redis      *redis.Client
	cache      store
	api        *studioapi.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ClassBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStudioAPI(); err != nil {
		return nil, fmt.Errorf("init studio api: %w", err)
	}

	if err = app.initCache(); err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStudioAPI() error {
	tokens, err := tokenProvider(a.cfg.StudioAPI)
	if err != nil {
		return err
	}

	client, err := studioapi.NewClient(studioapi.Options{
		BaseURL:    a.cfg.StudioAPI.BaseURL,
		HTTPClient: &http.Client{Timeout: a.cfg.StudioAPI.Timeout},
		Tokens:     tokens,
		Retry: retry.Strategy{
			Attempts: a.cfg.StudioAPI.RetryAttempts,
			Delay:    a.cfg.StudioAPI.RetryDelay,
			Backoff:  2,
		},
	})
	if err != nil {
		return err
	}

	a.api = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "studio api client ready",
		logger.String("base_url", a.cfg.StudioAPI.BaseURL),
		logger.String("auth_mode", a.cfg.StudioAPI.AuthMode),
		logger.Int("retry_attempts", a.cfg.StudioAPI.RetryAttempts),
	)

	return nil
}

func tokenProvider(cfg config.StudioAPIConfig) (auth.TokenProvider, error) {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		p, err := auth.NewSignedTokenProvider(auth.SignedTokenConfig{
			Secret:  cfg.JWTSecret,
			Issuer:  cfg.JWTIssuer,
			Subject: cfg.JWTSubject,
			TTL:     cfg.JWTTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("signed token provider: %w", err)
		}
		return p, nil
	case config.AuthModeStatic, "":
		return auth.StaticToken(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}

func (a *App) initCache() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis address is empty, caching disabled")
		a.cache = cache.Nop{}
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	rc, err := cache.NewRedis(context.Background(), &cache.Config{
		RedisClient: client,
		TTL:         a.cfg.Redis.TTL,
	})
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("connecting to redis: %w", err)
	}

	a.redis = client
	a.cache = rc
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Int("db", a.cfg.Redis.DB),
		logger.Duration("ttl", a.cfg.Redis.TTL),
	)

	return nil
}

func (a *App) initServices() error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	memberService := service.NewMemberService(a.api, a.cache, a.log)
	classService := service.NewClassService(a.api, a.cache, memberService, service.RefreshOptions{
		MaxPages: a.cfg.Scheduler.MaxPages,
		PageSize: a.cfg.Scheduler.PageSize,
	}, a.log)
	bookingService := service.NewBookingService(a.api, a.api, memberService, classService, n, a.log)

	a.scheduler = scheduler.New(
		classService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(classService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

	go a.scheduler.Start(ctx)

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

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
