package utils_test

import (
	"testing"

	"github.com/havenwellness/catalog-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := utils.HashPassword("123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, utils.CheckPassword(hash, "123456"))
	assert.False(t, utils.CheckPassword(hash, "654321"))
}
