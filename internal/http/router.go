package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"mockgraph/internal/config"
	"mockgraph/internal/http/controller"
	"mockgraph/internal/http/middleware"
	"mockgraph/internal/metrics"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.ZapLogger(logger, "/health", "/metrics"),
		middleware.ZapRecovery(logger),
		otelgin.Middleware(cfg.OTELServiceName),
		m.Middleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.GET("/", handler.Index)
	router.POST("/graphql", handler.GraphQL)
	router.GET("/graphql", handler.GraphQLGet)
	router.GET(handler.ListingPath(), handler.ListAll)
	router.GET("/events", handler.Events)

	return router
}
