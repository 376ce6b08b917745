package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	ranking "github.com/rockzerox/Project-Sekai-Ranking-sub001"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/config"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/application/usecase"
	blobRepository "github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/blob"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/kvstore"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/blob"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/database"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/minio"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/infrastructure/redis"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/presentation/handler"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/presentation/middleware"
	"github.com/rockzerox/Project-Sekai-Ranking-sub001/pkg/otel"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running structure", "version", ranking.StringVersion())

	shutdownTracing, err := otel.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		ExitOnError(err)
	}

	store, closeStore := connectStore(cfg)

	var s3Fetcher blobRepository.Fetcher
	if cfg.MinIOClient.Endpoint != "" {
		minIOClient, err := minio.New(&cfg.MinIOClient)
		if err != nil {
			ExitOnError(err)
		}
		s3Fetcher = minio.NewFetcher(minIOClient.MinioClient, &cfg.MinIOFetcher)
	}

	fetcher := blob.NewRouter(blob.NewHTTPFetcher(cfg.HTTPFetcher), s3Fetcher)
	retriever := usecase.NewRetriever(store, fetcher, cfg.Retriever)
	structureHandler := handler.NewStructureHandler(retriever)

	e := echo.New()
	middleware.Register(e, cfg.Middleware)

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/", structureHandler.HandleGet)
	e.GET("/api/structure", structureHandler.HandleGet)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := closeStore(); err != nil {
		logger.Error("can't close key-value store", "err", err)
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Error("can't flush traces", "err", err)
	}
}

// connectStore returns a nil store when the credential is absent so that
// requests are answered with a configuration error instead of the process
// refusing to start.
func connectStore(cfg *config.Config) (kvstore.Store, func() error) {
	noop := func() error { return nil }

	if !cfg.StoreConfigured() {
		logger.Warn("key-value store credential missing", "driver", cfg.Store.Driver)

		return nil, noop
	}

	switch cfg.Store.Driver {
	case config.DriverMongo:
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			ExitOnError(err)
		}

		return database.NewStructureRetriever(db), db.Stop

	default:
		store, err := redis.NewStore(cfg.Redis)
		if err != nil {
			ExitOnError(err)
		}

		return store, store.Close
	}
}
