package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/routes"
	"laundrypos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func main() {
	remote := services.NewRemoteClient()
	notifier := services.NewNotifyService()

	catalog := services.NewCatalogService(config.DB)
	orders := services.NewOrderService(config.DB, remote, notifier)
	reports := services.NewReportService(config.DB)
	sync := services.NewSyncService(config.DB, remote)

	if err := catalog.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to seed service catalog: %v", err)
	}

	sync.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(catalog, orders, reports, sync, remote)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
