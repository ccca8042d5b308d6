// Command server runs the veterinary clinic REST API.
//
// Startup sequence: load .env (best effort), parse configuration, configure
// zerolog, open the database through the configured persistence strategy,
// bootstrap the schema, optionally enable tracing, then serve HTTP with
// graceful shutdown on SIGINT/SIGTERM.
//
// @title        Clinic API
// @version      1.0
// @description  REST backend for a veterinary clinic: owners, pets, visits, vets, specialties, pet types, and user accounts.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	_ "github.com/vetware/go-clinic-backend/docs"
	"github.com/vetware/go-clinic-backend/internal/config"
	httpapi "github.com/vetware/go-clinic-backend/internal/http"
	"github.com/vetware/go-clinic-backend/internal/observability"
	"github.com/vetware/go-clinic-backend/internal/repo"
	"github.com/vetware/go-clinic-backend/internal/repo/gormstore"
	"github.com/vetware/go-clinic-backend/internal/repo/sqlstore"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).
			Str("strategy", cfg.DBStrategy).
			Str("driver", cfg.DBDriver).
			Msg("opening store failed")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, store, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("strategy", cfg.DBStrategy).
			Str("driver", cfg.DBDriver).
			Str("version", version).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := closeStore(); err != nil {
		log.Error().Err(err).Msg("closing store failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// openStore builds the repository bundle for the configured persistence
// strategy and driver. The returned closer releases the underlying database
// handle.
func openStore(ctx context.Context, cfg config.Config) (*repo.Store, func() error, error) {
	switch cfg.DBStrategy {
	case config.StrategyGORM:
		db, err := openGorm(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := gormstore.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		if cfg.OTEL.Enabled {
			if err := gormstore.EnableTracing(db); err != nil {
				return nil, nil, err
			}
		}
		closer := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return gormstore.New(db), closer, nil

	case config.StrategySQL:
		var (
			db  *sqlstore.DB
			err error
		)
		if cfg.DBDriver == config.DriverPostgres {
			db, err = sqlstore.OpenPostgres(cfg.DBDSN)
		} else {
			db, err = sqlstore.OpenSQLite(cfg.DBPath)
		}
		if err != nil {
			return nil, nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		return sqlstore.New(db), db.Close, nil

	default:
		return nil, nil, errors.New("unknown DB_STRATEGY: " + cfg.DBStrategy)
	}
}

func openGorm(cfg config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == config.DriverPostgres {
		return gormstore.OpenPostgres(cfg.DBDSN)
	}
	return gormstore.OpenSQLite(cfg.DBPath)
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
