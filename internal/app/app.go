package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"

	"category_service/config"
	"category_service/internal/delivery"
	grpcdelivery "category_service/internal/delivery/grpc"
	"category_service/internal/domain"
	"category_service/internal/repository"
	"category_service/internal/usecase"
	"category_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	gormlogger "gorm.io/gorm/logger"
)

type App struct {
	cfg        *config.Config
	log        *logrus.Logger
	router     *gin.Engine
	grpcServer *grpc.Server
	closers    []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	categoryRepo, err := a.buildRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Infof("Repository initialized with driver %s.", cfg.StoreDriver)

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	logger.Info("Use cases initialized.")

	gin.SetMode(cfg.GinMode)
	a.router = delivery.NewRouter(logger, delivery.NewCategoryHandler(categoryUseCase, logger))
	if cfg.GrpcPort != "" {
		a.grpcServer = grpcdelivery.NewServer(logger, grpcdelivery.NewCategoryHandler(categoryUseCase, logger))
	}
	logger.Info("Handlers initialized.")

	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) buildRepository(ctx context.Context) (domain.CategoryRepository, error) {
	switch a.cfg.StoreDriver {
	case config.DriverPostgres:
		database, err := db.Connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, database.Close)
		if err := a.ensureTable(ctx, database, "postgres"); err != nil {
			return nil, err
		}
		a.log.Info("Database connection established.")
		return repository.NewPostgresCategoryRepository(database, a.log), nil

	case config.DriverSQLite:
		database, err := db.OpenSQLite(ctx, a.cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		a.closers = append(a.closers, database.Close)
		if err := a.ensureTable(ctx, database, "sqlite"); err != nil {
			return nil, err
		}
		a.log.Infof("SQLite database opened at %s.", a.cfg.SQLitePath)
		return repository.NewSQLiteCategoryRepository(database, a.log), nil

	case config.DriverGorm:
		level := gormlogger.Warn
		if a.log.IsLevelEnabled(logrus.DebugLevel) {
			level = gormlogger.Info
		}
		gdb, sqlDB, err := db.OpenGorm(ctx, a.cfg.DatabaseURL, level)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		if err := a.ensureTable(ctx, sqlDB, "postgres"); err != nil {
			return nil, err
		}
		a.log.Info("Database connection established through gorm.")
		return repository.NewGormCategoryRepository(gdb, a.log), nil

	case config.DriverMemory:
		a.log.Warn("Using in-memory category store; data is lost on restart.")
		return repository.NewMemoryCategoryRepository(a.log), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", a.cfg.StoreDriver)
}

func (a *App) ensureTable(ctx context.Context, database *sql.DB, dialect string) error {
	if !a.cfg.AutoCreateTable {
		return nil
	}
	if err := db.EnsureCategoryTable(ctx, database, dialect); err != nil {
		return err
	}
	a.log.Info("Categories table ensured.")
	return nil
}

// Run serves HTTP (and gRPC when configured) until ctx is cancelled or a
// server fails, then shuts both down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	httpListener, err := net.Listen("tcp", a.cfg.HTTPPort)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.HTTPPort, err)
	}
	httpServer := &http.Server{Handler: a.router}

	errCh := make(chan error, 2)
	go func() {
		a.log.Infof("Starting HTTP server on %s", httpListener.Addr())
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.grpcServer != nil {
		grpcListener, err := net.Listen("tcp", a.cfg.GrpcPort)
		if err != nil {
			_ = httpServer.Close()
			return fmt.Errorf("failed to listen on %s: %w", a.cfg.GrpcPort, err)
		}
		go func() {
			a.log.Infof("Starting gRPC server on %s", grpcListener.Addr())
			if err := a.grpcServer.Serve(grpcListener); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("Shutdown signal received")
	case runErr = <-errCh:
		a.log.Errorf("Server failed: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if a.grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			a.grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			a.grpcServer.Stop()
		}
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Errorf("HTTP server shutdown failed: %v", err)
		if runErr == nil {
			runErr = err
		}
	}
	a.log.Info("Servers stopped")
	return runErr
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
