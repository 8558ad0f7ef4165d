package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/resenaros/Ecommerce-API/config"
	_ "github.com/resenaros/Ecommerce-API/docs"
	"github.com/resenaros/Ecommerce-API/middleware"
	"github.com/resenaros/Ecommerce-API/routes"
)

// @title E-commerce API
// @version 1.0
// @description CRUD API for users, products, and orders.
// @BasePath /
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
