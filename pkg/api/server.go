// Package api exposes the HTTP surface: the REST API, the WebSocket
// endpoint, and the MCP JSON-RPC route.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/database"
	"github.com/gatherhub/gatherhub/pkg/mcp"
	"github.com/gatherhub/gatherhub/pkg/realtime"
	"github.com/gatherhub/gatherhub/pkg/services"
	"github.com/gatherhub/gatherhub/pkg/sync"
)

// Server wires the echo router to the service layer.
type Server struct {
	echo     *echo.Echo
	cfg      *config.Env
	dbClient *database.Client

	catalog   *services.CatalogService
	rsvps     *services.RSVPService
	favorites *services.FavoritesService
	claims    *services.ClaimService
	checkins  *services.CheckinService
	syncSvc   *sync.Service
	publisher *bus.Publisher

	connManager   *realtime.ConnectionManager
	mcpDispatcher *mcp.Dispatcher

	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Env,
	dbClient *database.Client,
	catalog *services.CatalogService,
	rsvps *services.RSVPService,
	favorites *services.FavoritesService,
	claims *services.ClaimService,
	checkins *services.CheckinService,
	syncSvc *sync.Service,
	publisher *bus.Publisher,
	connManager *realtime.ConnectionManager,
	mcpDispatcher *mcp.Dispatcher,
) *Server {
	s := &Server{
		echo:          echo.New(),
		cfg:           cfg,
		dbClient:      dbClient,
		catalog:       catalog,
		rsvps:         rsvps,
		favorites:     favorites,
		claims:        claims,
		checkins:      checkins,
		syncSvc:       syncSvc,
		publisher:     publisher,
		connManager:   connManager,
		mcpDispatcher: mcpDispatcher,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)
	e.POST("/mcp", s.mcpHandler)

	v1 := e.Group("/api/v1")

	v1.GET("/events", s.listEventsHandler)
	v1.GET("/events/:id", s.getEventHandler)
	v1.GET("/groups", s.listGroupsHandler)
	v1.GET("/groups/:slug", s.getGroupHandler)

	v1.POST("/events/:id/rsvp", s.createRSVPHandler, requireUser)
	v1.DELETE("/events/:id/rsvp", s.cancelRSVPHandler, requireUser)
	v1.GET("/me/rsvps", s.listMyRSVPsHandler, requireUser)

	v1.PUT("/me/favorites/:slug", s.addFavoriteHandler, requireUser)
	v1.DELETE("/me/favorites/:slug", s.removeFavoriteHandler, requireUser)
	v1.GET("/me/favorites", s.listFavoritesHandler, requireUser)

	v1.POST("/claim", s.claimHandler, requireUser)
	v1.POST("/events/:id/checkin", s.checkinHandler, requireUser)

	v1.POST("/sync", s.syncAllHandler, s.requireAdmin)
	v1.POST("/groups/:slug/sync", s.syncGroupHandler, s.requireAdmin)
	v1.GET("/sync/logs", s.syncLogsHandler, s.requireAdmin)

	v1.POST("/webhooks", s.createWebhookHandler, s.requireAdmin)
	v1.GET("/webhooks", s.listWebhooksHandler, s.requireAdmin)
	v1.DELETE("/webhooks/:id", s.deleteWebhookHandler, s.requireAdmin)
	v1.GET("/webhooks/:id/deliveries", s.listDeliveriesHandler, s.requireAdmin)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// emit publishes service-produced events, logging rather than failing
// the request when the queue write errors. The request's own state
// change already committed.
func (s *Server) emit(c *echo.Context, events []bus.Envelope) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.EmitAll(c.Request().Context(), events); err != nil {
		slog.Error("Failed to enqueue domain events", "error", err)
	}
}
