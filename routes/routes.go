package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/resenaros/Ecommerce-API/config"
	"github.com/resenaros/Ecommerce-API/controllers"
	"github.com/resenaros/Ecommerce-API/repositories"
	"github.com/resenaros/Ecommerce-API/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	productRepo := repositories.NewProductRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("SMTP not configured, order confirmation emails disabled")
	}

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, userRepo, productRepo, mailer))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	users := router.Group("/users")
	{
		users.GET("", userCtrl.GetAllUsers)
		users.GET("/:id", userCtrl.GetUserByID)
		users.POST("", userCtrl.CreateUser)
		users.PUT("/:id", userCtrl.UpdateUser)
		users.DELETE("/:id", userCtrl.DeleteUser)
	}

	products := router.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.GET("/:id", productCtrl.GetProductByID)
		products.POST("", productCtrl.CreateProduct)
		products.PUT("/:id", productCtrl.UpdateProduct)
		products.DELETE("/:id", productCtrl.DeleteProduct)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/user/:user_id", orderCtrl.GetOrdersByUser)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.DELETE("/:id", orderCtrl.DeleteOrder)
		orders.PUT("/:id/add_product/:product_id", orderCtrl.AddProduct)
		orders.DELETE("/:id/remove_product/:product_id", orderCtrl.RemoveProduct)
		orders.GET("/:id/products", orderCtrl.GetOrderProducts)
	}
}
