package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zyppr/models"
	"zyppr/services/user"
	"zyppr/utils"
)

type signupRequest struct {
	Role models.Role       `json:"role" binding:"required"`
	Data map[string]string `json:"data" binding:"required"`
}

type loginRequest struct {
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

type resetPasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SignupHandler registers an account. Owner signups create the linked
// business as a side effect.
func (h *HandlerBundle) SignupHandler(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.Signup(c.Request.Context(), req.Role, req.Data)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates by email, password and role.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the presented token's session.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := h.Users.Logout(c.Request.Context(), c.GetString("tokenHash")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler returns the authenticated user's account record.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	u, err := h.Users.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler overwrites the customer profile of the
// authenticated user.
func (h *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	var profile models.CustomerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Users.UpdateProfile(c.Request.Context(), c.GetString("userID"), profile)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ResetPasswordHandler changes the password after verifying the old one.
func (h *HandlerBundle) ResetPasswordHandler(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.Users.ResetPassword(c.Request.Context(), c.GetString("userID"), req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
