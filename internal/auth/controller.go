package auth

import (
	"errors"
	"fmt"
	"net/http"

	"safar-travel-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *AuthService
	LS          *logs.LogService
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, accessCookie)

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("Admin %s logged in", req.Username),
		Admin:   &req.Username,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	}
	http.SetCookie(c.Writer, accessCookie)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	username := c.GetString("adminUsername")

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"role":     "admin",
	})
}
