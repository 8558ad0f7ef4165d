// Package api exposes the application as a single http.Handler for
// serverless platforms that route every request through one function.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/resenaros/Ecommerce-API/config"
	_ "github.com/resenaros/Ecommerce-API/docs"
	"github.com/resenaros/Ecommerce-API/middleware"
	"github.com/resenaros/Ecommerce-API/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(middleware.RequestIDMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
