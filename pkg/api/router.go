package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medireon/site/pkg/config"
	"github.com/medireon/site/pkg/logger"
	"github.com/medireon/site/pkg/middleware"
	"github.com/medireon/site/pkg/web"
)

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(h *Handlers, cfg *config.Config, logg *logger.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.Recoverer(logg))
	router.Use(middleware.RequestID(logg))
	router.Use(middleware.Logging(logg))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.VisitorID(logg, cfg.App.IsProd()))

	router.GET("/health", h.HealthCheck)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	router.StaticFS("/static", http.FS(web.Static()))

	router.GET("/", h.Home)
	router.GET("/launch", h.Launch)

	apiGroup := router.Group("/api")
	apiGroup.GET("/countdown", h.Countdown)
	apiGroup.GET("/countdown/stream", h.CountdownStream)
	apiGroup.GET("/pricing", h.Pricing)

	forms := router.Group("/forms")
	forms.Use(middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst).Middleware(logg))
	forms.POST("/launch", h.SubmitLaunch)
	forms.POST("/newsletter", h.SubmitNewsletter)
	forms.POST("/demo", h.SubmitDemo)
	forms.POST("/plan", h.SubmitPlan)

	router.NoRoute(h.NotFound)

	return router
}
