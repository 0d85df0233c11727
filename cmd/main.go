package main

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	arenaredis "arenamanager/adapters/redis"
	"arenamanager/handlers"
	"arenamanager/interfaces"
	"arenamanager/service"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting ArenaManager service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"redis_addr", config.RedisAddr,
		"content_path", config.ContentPath,
	)

	content, err := LoadContent(config.ContentPath)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load content config", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Content loaded",
		"world", content.World,
		"max_concurrent", content.Grid.MaxConcurrent,
		"themes", len(content.Themes),
		"bosses", len(content.Bosses),
	)

	// Connect to Redis
	redisClient, err := arenaredis.NewRedisUniversalClient(config.RedisAddr)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
		os.Exit(1)
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
	}

	// Host bridge and its adapters
	var blueprints interfaces.BlueprintStore
	var spawner interfaces.MobSpawner
	var players interfaces.PlayerGateway
	var rewards interfaces.RewardDispatcher
	var ledger interfaces.GemLedger
	var partyChannel *arenaredis.PartyChannel
	{
		bridge := arenaredis.NewHostBridge(redisClient, config.HostReplyTimeout, logger)
		blueprints = arenaredis.NewBlueprintStore(bridge, content.World, logger)
		spawner = arenaredis.NewMobSpawner(bridge, logger)
		players = arenaredis.NewPlayerGateway(bridge, logger)
		rewards = arenaredis.NewRewardDispatcher(bridge, logger)
		ledger = arenaredis.NewGemLedger(redisClient, logger)
		partyChannel = arenaredis.NewPartyChannel(redisClient, logger)
	}

	// Catalogs, re-reading the content file on Reload
	var themes interfaces.ThemeCatalog
	var bosses interfaces.BossCatalog
	{
		themeSource := func() ([]service.ThemeRecord, error) {
			c, err := LoadContent(config.ContentPath)
			if err != nil {
				return nil, err
			}
			return c.Themes, nil
		}
		bossSource := func() ([]service.BossRecord, error) {
			c, err := LoadContent(config.ContentPath)
			if err != nil {
				return nil, err
			}
			return c.Bosses, nil
		}

		themes, err = service.NewThemeCatalog(themeSource, blueprints, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load theme catalog", "err", err)
			os.Exit(1)
		}
		bosses, err = service.NewBossCatalog(bossSource, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load boss catalog", "err", err)
			os.Exit(1)
		}
	}

	// Core services
	scheduler := service.NewHostScheduler(content.Workers, logger)
	slots := service.NewSlotPool(content.SlotGrid(), logger)
	registry := service.NewInstanceRegistry(logger)
	validator := service.NewPartyValidator(partyChannel, config.PartyTimeout, logger)

	var orchestrator interfaces.ArenaOrchestrator
	{
		orchestrator = service.NewArenaOrchestrator(
			service.OrchestratorConfig{
				LobbyLocation:       content.LobbyLocation(),
				MusicTracks:         content.MusicTracks,
				ProvisionTimeout:    config.ProvisionTimeout,
				RetireDelay:         time.Duration(content.RetireDelayMS) * time.Millisecond,
				BossDefeatedMessage: content.BossDefeatedMessage,
			},
			slots,
			registry,
			themes,
			blueprints,
			spawner,
			players,
			rewards,
			scheduler,
			service.NewTimeProvider(time.Now),
			rand.Float64,
			logger,
		)
	}

	var workflow interfaces.EventWorkflow
	{
		workflow = service.NewEventWorkflow(
			service.WorkflowConfig{
				MinPartySize: content.Party.MinSize,
				MaxPartySize: content.Party.MaxSize,
			},
			validator,
			ledger,
			bosses,
			orchestrator,
			players,
			logger,
		)
	}

	// Inbound listeners: party responses and world events from the host
	listenCtx, listenCancel := context.WithCancel(context.Background())
	defer listenCancel()
	go func() {
		if err := partyChannel.Listen(listenCtx, validator); err != nil && listenCtx.Err() == nil {
			level.Error(logger).Log("msg", "Party response listener stopped", "err", err)
		}
	}()
	hostEvents := arenaredis.NewHostEventChannel(redisClient, logger)
	go func() {
		if err := hostEvents.Listen(listenCtx, orchestrator); err != nil && listenCtx.Err() == nil {
			level.Error(logger).Log("msg", "Host event listener stopped", "err", err)
		}
	}()

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		httpServer := handlers.NewHTTPServer(themes, bosses, registry, orchestrator, workflow, validator, logger)
		handlers.RegisterRoutes(e, httpServer)
	}

	// Create gRPC server: health and reflection only, for probes and tooling
	var grpcServer *grpc.Server
	{
		grpcServer = grpc.NewServer()
		healthServer := health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start servers
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()
	go func() {
		addr := fmt.Sprintf(":%d", config.GRPCPort)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen for gRPC", "addr", addr, "err", err)
			return
		}
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", addr)
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Stop taking requests, then drain live instances before releasing the
	// scheduler and Redis.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
	}
	grpcServer.GracefulStop()
	listenCancel()

	if err := orchestrator.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error draining arena instances", "err", err)
	}
	if err := scheduler.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing scheduler", "err", err)
	}
	if err := redisClient.Close(); err != nil {
		level.Error(logger).Log("msg", "Error closing Redis client", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
