package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/controllers"
	"github.com/velora-store/velora-api/middlewares"
	"github.com/velora-store/velora-api/utils"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/metrics", utils.MetricsHandler())
	server.GET("/stats/orders", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetOrderStats)
}
