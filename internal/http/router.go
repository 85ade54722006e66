package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/http/controller"
	"feedback_dashboard/internal/http/middleware"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/ratelimit"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, limiter *ratelimit.Limiter, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
		middleware.Prometheus(m),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	user := router.Group("/feedback")
	user.POST("/submit", middleware.RateLimit(limiter, logger), handler.SubmitFeedback)

	admin := router.Group("/admin")
	admin.GET("/feedbacks", handler.ListFeedbacks)

	return router
}
