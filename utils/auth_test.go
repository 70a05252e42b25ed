package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-store/velora-api/models"
	"github.com/velora-store/velora-api/utils"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPassword(hash, "s3cret-password"))
	assert.False(t, utils.CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordNotDeterministic(t *testing.T) {
	first, err := utils.HashPassword("same-input")
	require.NoError(t, err)
	second, err := utils.HashPassword("same-input")
	require.NoError(t, err)

	// Random salt: identical inputs must not produce identical hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, utils.CheckPassword(first, "same-input"))
	assert.True(t, utils.CheckPassword(second, "same-input"))
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	assert.False(t, utils.CheckPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, utils.CheckPassword("", "anything"))
}

func testUser() models.User {
	user := models.User{
		Email: "jane@example.com",
		Role:  "user",
	}
	user.ID = 42
	return user
}

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	tokenString, err := utils.GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := utils.ValidateJWT(tokenString)
	require.NoError(t, err)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 2*time.Hour.Seconds(), exp-iat, 5)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	tokenString, err := utils.GenerateJWT(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = utils.ValidateJWT(tokenString)
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	// Hand-roll a token that is correctly signed but already expired.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"email":   "jane@example.com",
		"iat":     time.Now().Add(-3 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = utils.ValidateJWT(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWTMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	_, err := utils.ValidateJWT("definitely.not.a-token")
	assert.Error(t, err)
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := utils.GenerateJWT(testUser())
	assert.ErrorIs(t, err, utils.ErrMissingSecret)
}
