package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-reservations/internal/handler/api"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/config"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the reservation database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	db Pinger,
	reservationHandler *api.ReservationHandler,
	tableHandler *api.TableHandler,
) {
	engine.Use(
		middleware.RecoverPanics(),
		middleware.NewCORSMiddleware(cfg.CORS),
		logger.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.RenderErrors(),
	)

	engine.GET("/health", healthCheck(db))
	engine.GET("/metrics", middleware.MetricsHandler())
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// POST on the collection and on /new are both accepted for creation.
	mount(engine.Group("/reservations"),
		route{http.MethodGet, "", reservationHandler.List},
		route{http.MethodPost, "", reservationHandler.Create},
		route{http.MethodPost, "/new", reservationHandler.Create},
		route{http.MethodGet, "/:reservation_id", reservationHandler.Get},
		route{http.MethodPut, "/:reservation_id", reservationHandler.Edit},
		route{http.MethodPut, "/:reservation_id/status", reservationHandler.UpdateStatus},
	)
	mount(engine.Group("/tables"),
		route{http.MethodGet, "", tableHandler.List},
		route{http.MethodPost, "", tableHandler.Create},
		route{http.MethodPost, "/new", tableHandler.Create},
		route{http.MethodGet, "/:table_id", tableHandler.Get},
		route{http.MethodPut, "/:table_id/seat", tableHandler.Seat},
		route{http.MethodDelete, "/:table_id/seat", tableHandler.Unseat},
	)
}

func mount(g *gin.RouterGroup, routes ...route) {
	for _, r := range routes {
		g.Handle(r.method, r.path, r.handler)
	}
}

// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}
