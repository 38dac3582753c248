package main

import (
	"log"

	"pizza-delivery/config"
	_ "pizza-delivery/docs"
	"pizza-delivery/middleware"
	"pizza-delivery/migrations"
	"pizza-delivery/routes"

	"github.com/gin-gonic/gin"
)

// @title Pizza Delivery API
// @version 1.0
// @description Pizza ordering backend with JWT authentication and a staff role.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	if err := migrations.Run(config.DatabaseURL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	config.ConnectRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
