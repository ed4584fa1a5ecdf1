// internal/app/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"calculator-service/internal/app/handlers"
	"calculator-service/internal/app/middleware"
	"calculator-service/internal/common/logger"
	"calculator-service/internal/common/observability"
)

// SetupRouter wires the HTTP surface. Health and metrics stay outside
// the authenticated group; everything under /calculator requires a
// caller identity.
func SetupRouter(
	serviceName string,
	calculatorHandler *handlers.CalculatorHandler,
	healthHandler *handlers.HealthHandler,
	obs *observability.Observability,
	log logger.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(middleware.RequestMetrics(obs))
	r.Use(middleware.RequestDetails(log))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	calculator := r.Group("/calculator", middleware.RequireUser())
	calculator.POST("/housing-expenses", calculatorHandler.Calculate)
	calculator.GET("/results", calculatorHandler.ListResults)
	calculator.GET("/results/:id", calculatorHandler.GetResult)
	calculator.DELETE("/results/:id", calculatorHandler.DeleteResult)

	return r
}
