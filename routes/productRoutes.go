package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/controllers"
	"github.com/velora-store/velora-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.POST("/product", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadProductImages)
}
