package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/dtos"
	"jobdesk/internal/models"
)

// UserStorer is what the handler needs from the user service.
type UserStorer interface {
	UpsertUser(ctx context.Context, req *dtos.UserUpsertRequest) (*models.User, error)
}

type UserHandler struct {
	users UserStorer
}

func NewUserHandler(users UserStorer) *UserHandler {
	return &UserHandler{users: users}
}

// StoreUser is the POST /api/users endpoint: upsert by firebase uid.
func (h *UserHandler) StoreUser(c *gin.Context) {
	var req dtos.UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.users.UpsertUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store user data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User data stored successfully",
		"user":    user,
	})
}
