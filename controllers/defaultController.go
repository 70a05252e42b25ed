package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Velora Store API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- GET "/profile" - Get the authenticated user's profile

PRODUCT
- GET "/product" - Get all products
- GET "/product/{id}" - Get product by ID
- POST "/product" - Create new product (admin)
- POST "/product-images" - Add product images (admin)

ORDER
- POST "/order" - Create a new order
- GET "/order" - Retrieve all orders (admin)
- GET "/order/mine" - Get the authenticated user's orders

CONTACT
- POST "/contact" - Send a message to the shop

STATS
- GET "/stats/orders" - Pending order count (admin)
- GET "/metrics" - Prometheus metrics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
