package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Name:  "Carlos",
		Email: "carlos@example.com",
		Role:  models.RoleBarber,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	tokenString, err := GenerateToken("secret", testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ParseToken("secret", tokenString)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "carlos@example.com", claims.Email)
	assert.Equal(t, models.RoleBarber, claims.Role)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, _ := GenerateToken("secret-a", testUser())

	_, err := ParseToken("secret-b", tokenString)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	// token "alg": "none" nunca deve passar
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	_, err := ParseToken("secret", tokenString)
	assert.Error(t, err)
}

func TestRoleOneOf(t *testing.T) {
	assert.True(t, models.RoleAdmin.OneOf(models.RoleAdmin))
	assert.True(t, models.RoleBarber.OneOf(models.RoleAdmin, models.RoleBarber))
	assert.False(t, models.RoleClient.OneOf(models.RoleAdmin, models.RoleBarber))
	assert.False(t, models.RoleClient.OneOf())
}
