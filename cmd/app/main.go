package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/chat"
	"github.com/Du7chy/Seedlings/internal/config"
	"github.com/Du7chy/Seedlings/internal/database"
	"github.com/Du7chy/Seedlings/internal/database/postgres"
	"github.com/Du7chy/Seedlings/internal/economy"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/garden"
	"github.com/Du7chy/Seedlings/internal/handler"
	"github.com/Du7chy/Seedlings/internal/metrics"
	"github.com/Du7chy/Seedlings/internal/room"
	"github.com/Du7chy/Seedlings/internal/scheduler"
	"github.com/Du7chy/Seedlings/internal/server"
	"github.com/Du7chy/Seedlings/internal/sse"
	"github.com/Du7chy/Seedlings/internal/user"
	"github.com/Du7chy/Seedlings/internal/worker"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = time.Hour
	sweepWorkers    = 2
	sweepQueueSize  = 8
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Event plumbing: services publish, metrics and SSE consume.
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()
	sse.BridgeEventBus(hub, bus)

	metrics.NewEventMetricsCollector().Register(bus)

	// Services over the PostgreSQL repositories.
	catalogService := catalog.NewService(postgres.NewCatalogRepository(pool), catalog.DefaultCacheTTL)
	userService := user.NewService(postgres.NewPlayerRepository(pool))
	economyService := economy.NewService(postgres.NewEconomyRepository(pool), catalogService, bus)
	gardenService := garden.NewService(postgres.NewGardenRepository(pool), catalogService, bus)
	roomService := room.NewService(postgres.NewRoomRepository(pool), bus)
	chatService := chat.NewService(postgres.NewChatRepository(pool), postgres.NewRoomRepository(pool), bus,
		chat.WithHistoryLimit(cfg.ChatHistoryLimit))

	gameService := game.NewService(userService, catalogService, economyService, gardenService, roomService, chatService)

	// Background sweep latches readiness and pushes plant.ready events.
	workerPool := worker.NewPool(sweepWorkers, sweepQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.ReadySweepInterval, worker.JobFunc(func(ctx context.Context) error {
		_, err := gardenService.SweepReady(ctx)
		return err
	}))
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, pool, gameService, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
