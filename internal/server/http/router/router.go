package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/flooeats/tracking/internal/server/http/handlers"
	"github.com/flooeats/tracking/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	boardHandler := handlers.NewBoardHandler(facade)
	driverHandler := handlers.NewDriverHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/number/:number", orderHandler.Track)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	api.GET("/customers/:id/orders", orderHandler.ByCustomer)

	restaurants := api.Group("/restaurants")
	restaurants.GET("/:id/orders", boardHandler.Snapshot)
	restaurants.POST("/:id/orders/refresh", boardHandler.Refresh)

	drivers := api.Group("/drivers")
	drivers.GET("", driverHandler.List)
	drivers.POST("", driverHandler.Create)
	drivers.PUT("/:id", driverHandler.Update)
	drivers.DELETE("/:id", driverHandler.Delete)
	drivers.GET("/:id/location", driverHandler.Location)
	drivers.PUT("/:id/location", driverHandler.UpdateLocation)
	drivers.GET("/:id/shift", driverHandler.Shift)
	drivers.POST("/:id/online", driverHandler.Online)
	drivers.POST("/:id/offline", driverHandler.Offline)
	drivers.GET("/:id/offer", driverHandler.Offer)
	drivers.POST("/:id/offer/accept", driverHandler.Accept)
	drivers.POST("/:id/offer/decline", driverHandler.Decline)

	return engine
}
