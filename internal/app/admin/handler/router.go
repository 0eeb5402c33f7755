package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storeadmin/pkg/logger"
	"storeadmin/pkg/metrics"
)

// SetupRoutes настраивает все маршруты админ-панели с использованием Gin
func SetupRoutes(
	catalogHandler *CatalogHandler,
	orderHandler *OrderHandler,
	userHandler *UserHandler,
	dashboardHandler *DashboardHandler,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("storeadmin"))

	// CORS настройки: dashboard UI живет на другом origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Snapshot-Stale"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "storeadmin",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)

		products := api.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/:id", catalogHandler.GetProduct)
			products.POST("", catalogHandler.CreateProduct)
			products.PUT("/:id", catalogHandler.UpdateProduct)
			products.DELETE("/:id", catalogHandler.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", catalogHandler.ListCategories)
			categories.GET("/:id", catalogHandler.GetCategory)
			categories.POST("", catalogHandler.CreateCategory)
			categories.PUT("/:id", catalogHandler.UpdateCategory)
			categories.DELETE("/:id", catalogHandler.DeleteCategory)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			orders.POST("/:id/fulfill", orderHandler.FulfillOrder)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", orderHandler.ListPayments)
			payments.GET("/:id", orderHandler.GetPayment)
			payments.PUT("/:id/status", orderHandler.UpdatePaymentStatus)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/send-message", userHandler.SendMessage)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", userHandler.ListNotifications)
			notifications.GET("/:id", userHandler.GetNotification)
			notifications.POST("", userHandler.CreateNotification)
			notifications.PUT("/:id", userHandler.UpdateNotification)
			notifications.DELETE("/:id", userHandler.DeleteNotification)
		}
	}

	return router
}
