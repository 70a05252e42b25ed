package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
	"github.com/velora-store/velora-api/utils"
	"gorm.io/gorm"
)

// Tolerance for the client-submitted total against the server-side
// recomputation, in currency units.
const totalPriceTolerance = 0.01

type orderItemData struct {
	ProductID int     `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
	Price     float64 `json:"price"`
}

type orderData struct {
	FullName    string          `json:"fullName" binding:"required"`
	Email       string          `json:"email" binding:"required"`
	Phone       string          `json:"phone" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Description string          `json:"description"`
	Items       []orderItemData `json:"items" binding:"required,min=1,dive"`
	Total       float64         `json:"total"`
}

func CreateOrder(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var orderInfo orderData
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The total is recomputed from catalog prices; the client value is
	// only checked, never stored.
	var computedTotal float64
	items := make([]models.OrderItem, 0, len(orderInfo.Items))
	for _, item := range orderInfo.Items {
		var product models.Product
		if err := initializers.DB.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "Order references an unknown product")
				return
			}
			log.Println("Database error resolving order item:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		computedTotal += product.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
	}

	if orderInfo.Total != 0 && math.Abs(orderInfo.Total-computedTotal) > totalPriceTolerance {
		sendErrorResponse(ctx, http.StatusBadRequest, "Submitted total does not match catalog prices")
		return
	}

	order := models.Order{
		UserID:      userID,
		FullName:    orderInfo.FullName,
		Email:       orderInfo.Email,
		Phone:       orderInfo.Phone,
		Address:     orderInfo.Address,
		Description: orderInfo.Description,
		Total:       computedTotal,
		Status:      "Pending",
	}

	// Order and line items land together or not at all.
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = int(order.ID)
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Println("Order transaction failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	utils.OrdersCreatedTotal.Inc()

	if err := utils.NotifyOrderCreated(utils.OrderNotification{
		OrderID:   order.ID,
		FullName:  order.FullName,
		Email:     order.Email,
		Total:     order.Total,
		ItemCount: len(items),
	}); err != nil {
		log.Println("Order webhook notification failed:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"orderId": order.ID,
	})
}

// GetOrders returns every order, newest first, with the owning account's
// email joined in. Admin only.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Select("orders.*, users.email AS account_email").
		Order("orders.created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Database error fetching orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetMyOrders returns the authenticated user's orders, newest first. A
// user with no orders gets an empty list, not an error.
func GetMyOrders(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders := []models.Order{}
	result := initializers.DB.
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Database error fetching user orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
