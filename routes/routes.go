package routes

import (
	"os"
	"strings"

	"laundrypos-backend/config"
	"laundrypos-backend/controllers"
	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	catalog *services.CatalogService,
	orders *services.OrderService,
	reports *services.ReportService,
	sync *services.SyncService,
	remote *services.RemoteClient,
) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	serviceController := controllers.NewServiceController(catalog)
	orderController := controllers.NewOrderController(orders)
	reportController := controllers.NewReportController(reports)
	syncController := controllers.NewSyncController(sync, remote, orders)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public customer tracking, no auth
	r.GET("/track/:token", syncController.TrackOrder)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", serviceController.CreateService)
			servicesGroup.GET("", serviceController.GetServices)
			servicesGroup.PUT("/:id", serviceController.UpdateService)
			servicesGroup.DELETE("/:id", serviceController.DeleteService)
			servicesGroup.POST("/reset", serviceController.ResetServices)
		}

		// Order routes
		ordersGroup := api.Group("/orders")
		{
			ordersGroup.POST("", orderController.CreateOrder)
			ordersGroup.GET("", orderController.GetOrders)
			ordersGroup.GET("/:id", orderController.GetOrder)
			ordersGroup.PATCH("/:id/status", orderController.UpdateOrderStatus)
			ordersGroup.DELETE("/:id", orderController.DeleteOrder)
			ordersGroup.DELETE("", orderController.ClearOrders)
		}

		// Report routes
		reportsGroup := api.Group("/reports")
		{
			reportsGroup.GET("/daily", reportController.GetDailyBreakdown)
			reportsGroup.GET("/stats", reportController.GetStats)
			reportsGroup.GET("/export", reportController.GetExport)
		}

		// Sync routes
		api.POST("/sync/resync", syncController.ResyncAll)
	}

	return r
}
