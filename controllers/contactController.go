package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
	"github.com/velora-store/velora-api/utils"
)

// CreateContactMessage stores a contact-form submission and forwards it to
// the shop inbox. The email is best-effort; the message row is the record.
func CreateContactMessage(ctx *gin.Context) {
	var contactMessage models.ContactMessage
	if err := ctx.ShouldBindJSON(&contactMessage); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if result := initializers.DB.Create(&contactMessage); result.Error != nil {
		log.Println("Contact message creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	inbox := os.Getenv("CONTACT_INBOX_EMAIL")
	if inbox != "" {
		emailData := utils.EmailData{
			Name:    contactMessage.Name,
			Email:   contactMessage.Email,
			Message: contactMessage.Message,
		}
		templatePath := filepath.Join("templates", "contact_message.html")
		if err := utils.SendEmail(inbox, "New contact message", emailData, templatePath); err != nil {
			log.Println("Error forwarding contact message:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Message received. We will get back to you shortly."})
}
