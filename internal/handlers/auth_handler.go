package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/adapters/repository"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/havenwellness/catalog-backend/utils"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repo repository.UserRepository
}

func NewAuthHandler(repo repository.UserRepository) *AuthHandler {
	return &AuthHandler{Repo: repo}
}

// Login exchanges admin credentials for a bearer token. The response body
// is stored whole by the admin panel, which reads .token from it.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Username and password are required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid username or password"))
		return
	}
	if !utils.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid username or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		logrus.WithError(err).Error("failed to sign token")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to log in"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"_id":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"token":    token,
	})
}
