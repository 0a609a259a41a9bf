// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	championshipRouter "github.com/abnerteste26-bot/group-champs/internal/championship/router"
	championshipService "github.com/abnerteste26-bot/group-champs/internal/championship/service"
	clockRepository "github.com/abnerteste26-bot/group-champs/internal/clock/repository"
	clockRouter "github.com/abnerteste26-bot/group-champs/internal/clock/router"
	clockService "github.com/abnerteste26-bot/group-champs/internal/clock/service"
	"github.com/abnerteste26-bot/group-champs/internal/config"
	"github.com/abnerteste26-bot/group-champs/internal/credential"
	"github.com/abnerteste26-bot/group-champs/internal/database/database"
	"github.com/abnerteste26-bot/group-champs/internal/database/migrate"
	fixtureRouter "github.com/abnerteste26-bot/group-champs/internal/fixture/router"
	fixtureService "github.com/abnerteste26-bot/group-champs/internal/fixture/service"
	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	groupRouter "github.com/abnerteste26-bot/group-champs/internal/group/router"
	groupService "github.com/abnerteste26-bot/group-champs/internal/group/service"
	"github.com/abnerteste26-bot/group-champs/internal/health"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	matchRepository "github.com/abnerteste26-bot/group-champs/internal/match/repository"
	matchRouter "github.com/abnerteste26-bot/group-champs/internal/match/router"
	matchService "github.com/abnerteste26-bot/group-champs/internal/match/service"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
	registrationRepository "github.com/abnerteste26-bot/group-champs/internal/registration/repository"
	registrationRouter "github.com/abnerteste26-bot/group-champs/internal/registration/router"
	registrationService "github.com/abnerteste26-bot/group-champs/internal/registration/service"
	standingsRepository "github.com/abnerteste26-bot/group-champs/internal/standings/repository"
	standingsRouter "github.com/abnerteste26-bot/group-champs/internal/standings/router"
	standingsService "github.com/abnerteste26-bot/group-champs/internal/standings/service"
	statisticsRepository "github.com/abnerteste26-bot/group-champs/internal/statistics/repository"
	statisticsRouter "github.com/abnerteste26-bot/group-champs/internal/statistics/router"
	statisticsService "github.com/abnerteste26-bot/group-champs/internal/statistics/service"
	"github.com/abnerteste26-bot/group-champs/internal/storage"
	teamRepository "github.com/abnerteste26-bot/group-champs/internal/team/repository"
	teamRouter "github.com/abnerteste26-bot/group-champs/internal/team/router"
	teamService "github.com/abnerteste26-bot/group-champs/internal/team/service"
	"github.com/abnerteste26-bot/group-champs/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, sugar *zap.SugaredLogger) error {
	db, err := database.New(sugar)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, sugar); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("object store: %w", err)
	}

	sinks := []audit.Sink{audit.NewStoreSink(db)}
	if cfg.Events.Enabled() {
		nc, err := audit.ConnectNATS(ctx, cfg.Events.NATSURL, sugar)
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		defer nc.Close()
		sinks = append(sinks, audit.NewNATSSink(nc, cfg.Events.AuditSubject))
	}
	auditLog := audit.NewRecorder(sugar, cfg.Events.AuditTimeout, sinks...)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(sugar))
	r.Use(middleware.Logger(sugar))
	r.Use(middleware.Authenticate(identity.NewJWTResolver(cfg.Auth.JWTSecret, cfg.Auth.Issuer), sugar))

	r.GET("/health", health.New(db, sugar).Check)
	registerModules(r, db, cfg, store, auditLog, sugar)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sugar.Infow("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sugar.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	err = g.Wait()
	auditLog.Wait()
	return err
}

func registerModules(
	r gin.IRouter,
	db *gorm.DB,
	cfg config.Config,
	store storage.ReferenceValidator,
	auditLog audit.Logger,
	sugar *zap.SugaredLogger,
) {
	championshipRouter.RegisterRoutes(r,
		championshipService.New(championshipRepository.New(db), db, cfg.Tournament, auditLog, sugar), sugar)

	groupRouter.RegisterRoutes(r,
		groupService.New(groupRepository.New(db), db, sugar), sugar)

	fixtureRouter.RegisterRoutes(r,
		fixtureService.New(db, auditLog, sugar), sugar)

	registrationRouter.RegisterRoutes(r,
		registrationService.New(
			registrationRepository.New(db),
			db,
			credential.NewIssuer(cfg.Tournament.CredentialDomain, 0),
			store,
			auditLog,
			sugar,
		), sugar)

	matchRouter.RegisterRoutes(r,
		matchService.New(matchRepository.New(db), db, auditLog, sugar), sugar)

	standingsRouter.RegisterRoutes(r,
		standingsService.New(standingsRepository.New(db), db, auditLog, sugar), sugar)

	teamRouter.RegisterRoutes(r,
		teamService.New(teamRepository.New(db), db, store, auditLog, sugar), sugar)

	clockRouter.RegisterRoutes(r,
		clockService.New(clockRepository.New(db), db, clockwork.NewRealClock(), sugar), sugar)

	statisticsRouter.RegisterRoutes(r,
		statisticsService.New(statisticsRepository.New(db, sugar), championshipRepository.New(db), sugar), sugar)
}
