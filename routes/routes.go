package routes

import (
	"pizza-delivery/controllers"
	"pizza-delivery/middleware"
	"pizza-delivery/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	RegisterRoutes(router, repositories.NewUserRepository(), repositories.NewOrderRepository())
}

// RegisterRoutes wires the route table against the given stores.
func RegisterRoutes(router *gin.Engine, users repositories.UserStore, orders repositories.OrderStore) {
	authCtrl := controllers.NewAuthController(users)
	orderCtrl := controllers.NewOrderController(orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/signup", authCtrl.Signup)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/auth/refresh", authCtrl.Refresh)

	order := router.Group("/order")
	order.Use(middleware.AuthMiddleware(users))
	{
		order.GET("/", orderCtrl.Hello)
		order.POST("/order", orderCtrl.PlaceOrder)
		order.GET("/user/orders", orderCtrl.GetMyOrders)
		order.GET("/user/order/:id/", orderCtrl.GetMyOrderByID)
		order.PUT("/order/update/:id/", orderCtrl.UpdateOrder)
		order.DELETE("/order/delete/:id/", orderCtrl.DeleteOrder)

		staff := order.Group("/")
		staff.Use(middleware.StaffMiddleware())
		{
			staff.GET("/orders", orderCtrl.ListAllOrders)
			staff.GET("/orders/:id", orderCtrl.GetOrderByID)
			staff.PATCH("/order/update/:id", orderCtrl.UpdateOrderStatus)
		}
	}
}
