package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/controllers"
	"github.com/velora-store/velora-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", middlewares.RequireAuth(), controllers.CreateOrder)
	server.GET("/order", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetOrders)
	server.GET("/order/mine", middlewares.RequireAuth(), controllers.GetMyOrders)
}
