package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
)

// GetOrderStats reports how many orders are still waiting on fulfillment.
func GetOrderStats(ctx *gin.Context) {
	var count int64
	result := initializers.DB.
		Model(&models.Order{}).
		Where("status = ?", "Pending").
		Count(&count)
	if result.Error != nil {
		log.Println("Database error counting pending orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count pending orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"pendingOrderCount": count})
}
