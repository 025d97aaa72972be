package utils_test

import (
	"testing"

	"github.com/havenwellness/catalog-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("507f1f77bcf86cd799439011", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("507f1f77bcf86cd799439011", "admin")
	assert.NoError(t, err)

	_, err = utils.VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := utils.GenerateToken("507f1f77bcf86cd799439011", "admin")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = utils.VerifyToken(token)
	assert.Error(t, err)
}
