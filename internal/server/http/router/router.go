package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ptanasia/potrack/internal/server/http/handlers"
	"github.com/ptanasia/potrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.EntryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Login)
	api.DELETE("/session", sessionHandler.Logout)
	api.GET("/session", sessionHandler.Current)

	orders := api.Group("/orders")
	orders.Use(middleware.SessionRequired(facade))
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/next-number", orderHandler.NextNumber)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.POST("/validate/header", orderHandler.ValidateHeader)
	orders.POST("/validate/items", orderHandler.ValidateItems)

	return engine
}
