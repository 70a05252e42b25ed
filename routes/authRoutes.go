package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/controllers"
	"github.com/velora-store/velora-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}
	server.GET("/profile", middlewares.RequireAuth(), controllers.GetProfile)
}
