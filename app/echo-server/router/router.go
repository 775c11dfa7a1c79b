package router

import (
	"insureai/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupPageRoutes(e *echo.Echo, handler *rest.PremiumHandler) {
	e.GET("/", handler.Index)
	e.POST("/predict", handler.Submit)
}

func SetupPredictionRoutes(api *echo.Group, handler *rest.PremiumHandler) {
	predictions := api.Group("/predictions")
	predictions.POST("", handler.Predict)
}

func SetupOpsRoutes(e *echo.Echo, handler *rest.PremiumHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
