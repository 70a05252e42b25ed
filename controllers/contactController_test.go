package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-store/velora-api/initializers"
	"github.com/velora-store/velora-api/models"
)

func TestCreateContactMessage(t *testing.T) {
	server := setupTestApp(t)

	recorder := doJSON(server, http.MethodPost, "/contact", "", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Do you ship overseas?",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var stored models.ContactMessage
	require.NoError(t, initializers.DB.First(&stored).Error)
	assert.Equal(t, "Do you ship overseas?", stored.Message)
}

func TestCreateContactMessageValidation(t *testing.T) {
	server := setupTestApp(t)

	cases := []map[string]any{
		{"email": "jane@example.com", "message": "hi"},
		{"name": "Jane", "message": "hi"},
		{"name": "Jane", "email": "jane@example.com"},
		{"name": "Jane", "email": "not-an-email", "message": "hi"},
	}
	for _, payload := range cases {
		recorder := doJSON(server, http.MethodPost, "/contact", "", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "payload %v should be rejected", payload)
	}

	var count int64
	initializers.DB.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
