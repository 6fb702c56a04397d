package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starthobby-backend/internal/repository"
	"starthobby-backend/internal/service"
)

type UserController struct {
	UserService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile handles GET /api/users/:userId/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	profile, err := uc.UserService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetBadges handles GET /api/users/:userId/badges
func (uc *UserController) GetBadges(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	badges, err := uc.UserService.GetBadges(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, badges)
}
