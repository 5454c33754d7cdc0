package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/clueless-backend/internal/clueless"
	"github.com/rocketscienceinc/clueless-backend/internal/config"
	"github.com/rocketscienceinc/clueless-backend/internal/repository"
	"github.com/rocketscienceinc/clueless-backend/internal/repository/storage"
	"github.com/rocketscienceinc/clueless-backend/internal/service"
	"github.com/rocketscienceinc/clueless-backend/internal/usecase"
	"github.com/rocketscienceinc/clueless-backend/transport/rest"
	"github.com/rocketscienceinc/clueless-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type repositories struct {
	games   repository.GameRepository
	players repository.PlayerRepository
	closer  io.Closer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	repos, err := openRepositories(ctx, conf)
	if err != nil {
		return err
	}

	if repos.closer != nil {
		defer func() {
			if err = repos.closer.Close(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}()
	}

	log.Info("storage ready", "driver", conf.Storage.Driver)

	gameController := clueless.NewGameController(clueless.WithMinPlayers(conf.Game.MinPlayers))
	gameService := service.NewGameService(repos.games, gameController)
	playerService := service.NewPlayerService(repos.players)

	gameManager := usecase.NewGameManager(logger, gameService, playerService, gameController, usecase.SessionConfig{
		IdleTimeout: conf.Session.IdleTimeout,
		QueueSize:   conf.Session.QueueSize,
	})

	wsServer := websocket.New(logger, gameManager)
	gameManager.SetBroadcaster(wsServer)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func openRepositories(ctx context.Context, conf *config.Config) (*repositories, error) {
	switch conf.Storage.Driver {
	case config.StorageMemory:
		return &repositories{
			games:   repository.NewMemoryGameRepository(),
			players: repository.NewMemoryPlayerRepository(),
		}, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return &repositories{
			games:   repository.NewSQLiteGameRepository(sqliteStorage.Connection),
			players: repository.NewSQLitePlayerRepository(sqliteStorage.Connection),
			closer:  sqliteStorage,
		}, nil

	default:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &repositories{
			games:   repository.NewGameRepository(redisStorage.Connection),
			players: repository.NewPlayerRepository(redisStorage.Connection),
			closer:  redisStorage,
		}, nil
	}
}
