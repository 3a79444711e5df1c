package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/membersbook/backend/api/handler"
	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/internal/config"
	"github.com/membersbook/backend/internal/infrastructure/monitor"
	sqliteInfra "github.com/membersbook/backend/internal/infrastructure/sqlite"
	"github.com/membersbook/backend/internal/middleware"
	"github.com/membersbook/backend/internal/router"
	"github.com/membersbook/backend/internal/services/lifecycle"
	"github.com/membersbook/backend/pkg/httpcontext"
	"github.com/membersbook/backend/pkg/logger"
	boltRepo "github.com/membersbook/backend/repository/bolt"
	sqliteRepo "github.com/membersbook/backend/repository/sqlite"
	approvalUC "github.com/membersbook/backend/usecase/approval"
	authUC "github.com/membersbook/backend/usecase/auth"
	feedUC "github.com/membersbook/backend/usecase/feed"
	memberUC "github.com/membersbook/backend/usecase/member"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	db, err := sqliteInfra.Open(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("database open failed", zap.Error(err))
	}
	manager.Register("database", func(ctx context.Context) error {
		return db.Close()
	})

	// Additive migration first for databases created by older builds,
	// then schema creation and one-time seeding. A schema failure here
	// is fatal: nothing works without the tables.
	sqliteInfra.MigrateSchema(appCtx, db, zapLogger)
	if err := sqliteInfra.EnsureSchema(appCtx, db, cfg.Database.Seed, zapLogger); err != nil {
		zapLogger.Fatal("schema setup failed", zap.Error(err))
	}

	sessionStore, err := boltRepo.Open(cfg.Session.Path)
	if err != nil {
		zapLogger.Fatal("failed to open session store", zap.Error(err))
	}
	manager.Register("session_store", func(ctx context.Context) error {
		return sessionStore.Close()
	})

	mon := monitor.New(db, sessionStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := sqliteRepo.NewUserRepository(db)
	dealRepo := sqliteRepo.NewDealRepository(db)

	authUseCase := authUC.New(userRepo, sessionStore, authUC.Config{
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		TokenTTL:  cfg.JWT.TTL,
	}, zapLogger)
	feedUseCase := feedUC.New(dealRepo, userRepo, zapLogger)
	memberUseCase := memberUC.New(userRepo, zapLogger)
	approvalUseCase := approvalUC.New(dealRepo, userRepo, zapLogger)

	var reset apiHandler.ResetFunc
	if cfg.IsDevelopment() {
		reset = func(ctx context.Context) error {
			return sqliteInfra.ResetSchema(ctx, db, cfg.Database.Seed, zapLogger)
		}
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:   apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Feed:   apiHandler.NewFeedHandler(feedUseCase, ctxAdapter, zapLogger),
		Member: apiHandler.NewMemberHandler(memberUseCase, ctxAdapter, zapLogger),
		Admin:  apiHandler.NewAdminHandler(approvalUseCase, reset, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	adminMiddleware := middleware.RequireRole(domain.RoleAdmin, zapLogger)
	r := router.New(handlers, authMiddleware, adminMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
