package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/controllers"
)

func ContactRoutes(server *gin.Engine) {
	server.POST("/contact", controllers.CreateContactMessage)
}
