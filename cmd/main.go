package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/config"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
	"github.com/Shadenm-404/holbertonschool-hbnb/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	addr := flag.String("addr", "", "HTTP network address (overrides server.address)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg.Level = level
	}
	return zcfg.Build()
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sugar := logger.Sugar()

	store, db, err := repositories.OpenStore(ctx, cfg.Database.Driver, cfg.Database.URL,
		cfg.Database.MaxOpenConns, cfg.Database.AutoMigrate)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	if db != nil {
		defer db.Close()
	}
	sugar.Infof("storage: %s", cfg.Database.Driver)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
	}
	sessions := sessionStore(rdb)

	tokens, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}
	facade := services.NewFacade(store, sessions, tokens, services.Options{
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	})

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		admin, created, err := facade.Users.EnsureAdmin(ctx, models.CreateUserRequest{
			Email:     cfg.Admin.Email,
			Password:  cfg.Admin.Password,
			FirstName: cfg.Admin.FirstName,
			LastName:  cfg.Admin.LastName,
		})
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if created {
			sugar.Infof("created admin %s", admin.Email)
		}
	}

	app := initializeApp(facade, db, rdb, sugar)

	c := cors.New(corsOptions(cfg.CORS.AllowedOrigins))

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		ErrorLog:     zap.NewStdLog(logger),
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sugar.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sugar.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		runSessionCleaner(gctx, sessions, cfg.Auth.SessionSweep, sugar)
		return nil
	})
	return g.Wait()
}

// corsOptions never pairs credentials with a wildcard origin.
func corsOptions(origins []string) cors.Options {
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: !wildcard,
	}
}
