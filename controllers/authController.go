package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
	"github.com/velora-store/velora-api/utils"
	"gorm.io/gorm"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgEmailAlreadyInUse     = "email is already registered"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserNotFound          = "user not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// userIDFromContext pulls the authenticated user id out of the claims the
// auth middleware stored. JWT numeric claims decode as float64.
func userIDFromContext(ctx *gin.Context) (int, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}

	return int(id), true
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Hash the password
	hashedPassword, err := utils.HashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Email:           signUpData.Email,
		Password:        hashedPassword,
		FirstName:       signUpData.FirstName,
		LastName:        signUpData.LastName,
		Role:            "user",
		Phone:           signUpData.Phone,
		DateOfBirth:     signUpData.DateOfBirth,
		Country:         signUpData.Country,
		ShippingAddress: signUpData.ShippingAddress,
		BillingAddress:  signUpData.BillingAddress,
		AcceptTerms:     signUpData.AcceptTerms,
		SubscribeToNews: signUpData.SubscribeToNews,
	}

	// The unique index on email is the authoritative duplicate check;
	// a pre-check read would race under concurrent signups.
	if result := initializers.DB.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusConflict, msgEmailAlreadyInUse)
			return
		}
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	utils.SignupsTotal.Inc()

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// Unknown email and wrong password get the same response, so the
	// endpoint cannot be used to probe which emails are registered.
	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Database error during login:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	// An empty stored hash is a corrupt record, not a credential failure.
	if user.Password == "" {
		log.Println("User record has no password hash, id:", user.ID)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if !utils.CheckPassword(user.Password, loginData.Password) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := utils.GenerateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	utils.ActiveUsers.Inc()

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"role":      user.Role,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

// GetProfile returns the full profile of the authenticated user.
func GetProfile(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
			return
		}
		log.Println("Database error fetching profile:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
