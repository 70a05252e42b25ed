package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
	"github.com/velora-store/velora-api/routes"
	"github.com/velora-store/velora-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the real routes against an in-memory sqlite store.
// A single pooled connection keeps the shared-cache database consistent
// under the concurrency tests.
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
	))

	initializers.DB = db

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.OrderRoutes(server)
	routes.ContactRoutes(server)
	return server
}

func doJSON(server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func signupPayload(email string) map[string]any {
	return map[string]any{
		"email":     email,
		"password":  "p4ssword",
		"firstName": "Jane",
		"lastName":  "Doe",
	}
}

// signupAndLogin registers a fresh user and returns a valid bearer token.
func signupAndLogin(t *testing.T, server *gin.Engine, email string) string {
	t.Helper()

	recorder := doJSON(server, http.MethodPost, "/auth/signup", "", signupPayload(email))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = doJSON(server, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": "p4ssword",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	token, ok := decodeBody(t, recorder)["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

// adminToken creates an admin account directly in the store and logs in.
// Public signup never grants the admin role, so tests seed it here.
func adminToken(t *testing.T, server *gin.Engine, email string) string {
	t.Helper()

	hash, err := utils.HashPassword("adm1n-pass")
	require.NoError(t, err)
	admin := models.User{
		Email:     email,
		Password:  hash,
		FirstName: "Ada",
		LastName:  "Admin",
		Role:      "admin",
	}
	require.NoError(t, initializers.DB.Create(&admin).Error)

	recorder := doJSON(server, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": "adm1n-pass",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	token, ok := decodeBody(t, recorder)["token"].(string)
	require.True(t, ok)
	return token
}

func createProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
	}
	require.NoError(t, initializers.DB.Create(&product).Error)
	return product
}
