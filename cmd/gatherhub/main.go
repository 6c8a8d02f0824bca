// GatherHub server. Aggregates community events from upstream platforms
// and serves the HTTP API, the WebSocket push surface, the MCP endpoint,
// and the domain-event dispatcher.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherhub/gatherhub/pkg/achievements"
	"github.com/gatherhub/gatherhub/pkg/api"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/database"
	"github.com/gatherhub/gatherhub/pkg/mcp"
	"github.com/gatherhub/gatherhub/pkg/notifications"
	"github.com/gatherhub/gatherhub/pkg/providers"
	"github.com/gatherhub/gatherhub/pkg/realtime"
	"github.com/gatherhub/gatherhub/pkg/scheduler"
	"github.com/gatherhub/gatherhub/pkg/services"
	"github.com/gatherhub/gatherhub/pkg/slack"
	syncsvc "github.com/gatherhub/gatherhub/pkg/sync"
	"github.com/gatherhub/gatherhub/pkg/version"
	"github.com/gatherhub/gatherhub/pkg/webhooks"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting GatherHub", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	queueCfg := config.LoadQueue()

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Provider registry
	registry := providers.NewRegistry()
	registry.Register(providers.NewMeetupAdapter())
	registry.Register(providers.NewEventbriteAdapter())
	registry.Register(providers.NewLumaAdapter())

	// 4. Event bus and domain services
	publisher := bus.NewPublisher(dbClient.Client)
	syncService := syncsvc.NewService(dbClient.Client, registry, publisher, env)
	catalog := services.NewCatalogService(dbClient.Client)
	rsvps := services.NewRSVPService(dbClient.Client)
	favorites := services.NewFavoritesService(dbClient.Client)
	claims := services.NewClaimService(dbClient.Client)
	checkins := services.NewCheckinService(dbClient.Client)
	slog.Info("Services initialized")

	// 4a. Optional operator alerting
	if env.SlackBotToken != "" && env.SlackChannelID != "" {
		notifier := slack.NewNotifier(slack.NewClient(env.SlackBotToken, env.SlackChannelID))
		syncService.SetFailureNotifier(notifier)
		slog.Info("Slack sync alerting enabled", "channel", env.SlackChannelID)
	}

	// 5. Realtime push (dedicated pgx connection for LISTEN)
	connManager := realtime.NewConnectionManager(10 * time.Second)
	notifyListener := realtime.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Realtime push initialized")

	// 6. Queue dispatcher with its consumers: the achievement engine,
	// the webhook deliverer, and the notification relayer all observe
	// every event type.
	engine := achievements.NewEngine(dbClient.Client, publisher)
	deliverer := webhooks.NewDeliverer(dbClient.Client)
	relayer := notifications.NewRelayer(dbClient.Client, realtime.NewPusher(dbClient.DB()))

	dispatcher := bus.NewDispatcher(dbClient.Client, queueCfg)
	dispatcher.RegisterWildcard(engine.Handle)
	dispatcher.RegisterWildcard(deliverer.Handle)
	dispatcher.RegisterWildcard(relayer.Handle)
	dispatcher.AddBatchListener(engine)

	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	dispatcherDone := make(chan struct{})
	go func() {
		dispatcher.Run(dispatcherCtx)
		close(dispatcherDone)
	}()
	slog.Info("Queue dispatcher started", "batch_size", queueCfg.BatchSize)

	// 7. MCP registry, frozen after registration
	mcpRegistry := mcp.NewRegistry()
	mcp.RegisterCoreTools(mcpRegistry, catalog, rsvps, syncService)
	mcp.RegisterCoreResources(mcpRegistry, catalog)
	mcp.RegisterCorePrompts(mcpRegistry, catalog)
	mcpRegistry.Freeze()
	mcpDispatcher := mcp.NewDispatcher(mcpRegistry)

	// 8. Optional periodic sync
	var cronSched *scheduler.Scheduler
	if env.SyncCron != "" {
		cronSched, err = scheduler.New(env.SyncCron, syncService)
		if err != nil {
			slog.Error("Invalid SYNC_CRON expression", "spec", env.SyncCron, "error", err)
			os.Exit(1)
		}
		cronSched.Start()
		defer cronSched.Stop()
		slog.Info("Periodic sync enabled", "spec", env.SyncCron)
	}

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(env, dbClient, catalog, rsvps, favorites, claims, checkins,
		syncService, publisher, connManager, mcpDispatcher)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("GatherHub started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop the dispatcher first so the in-flight
	// batch settles, then drain HTTP.
	stopDispatcher()
	select {
	case <-dispatcherDone:
		slog.Info("Queue dispatcher stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Queue dispatcher shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
