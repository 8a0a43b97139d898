package handlers

import (
	"errors"
	"net/http"

	"ridelink/services/user"

	"github.com/gin-gonic/gin"
)

var userService user.UserService

// SetUserService wires the user service used by the package-level handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles POST /api/auth/register.
func RegisterUserHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, password, and name are required"})
		return
	}

	if _, err := userService.Register(input); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
}

// AuthenticateUserHandler handles POST /api/auth/login.
func AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	auth, err := userService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":    auth.ID,
			"email": auth.Email,
			"name":  auth.Name,
			"role":  auth.Role,
		},
		"token": auth.Token,
	})
}
