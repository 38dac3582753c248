package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pizza-delivery/models"
	"pizza-delivery/repositories"
	"pizza-delivery/utils"
)

type AuthController struct {
	Users repositories.UserStore
}

func NewAuthController(users repositories.UserStore) *AuthController {
	return &AuthController{Users: users}
}

// Signup godoc
// @Summary Sign up
// @Description Create a new user account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignUpRequest true "Sign Up Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	taken, err := ctrl.Users.UsernameOrEmailTaken(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Signup failed"})
		return
	}
	if taken {
		c.JSON(400, gin.H{"success": false, "message": "User with that username or email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Signup failed"})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		IsStaff:  req.IsStaff,
		IsActive: active,
	}

	if err := ctrl.Users.Create(c.Request.Context(), user); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Signup failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Signup successful",
		"data":    user,
	})
}

// Login godoc
// @Summary User login
// @Description Login with username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.Users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}
	if user == nil || !utils.VerifyPassword(user.Password, req.Password) {
		c.JSON(401, gin.H{"success": false, "message": "Invalid username or password"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.Username)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.Username)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": models.LoginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         *user,
		},
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchange a refresh token for a new access token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh [get]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(401, gin.H{"success": false, "message": "Refresh token required"})
		return
	}

	claims, err := utils.ValidateRefreshToken(tokenParts[1])
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid or expired refresh token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.Subject)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to refresh token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Token refreshed",
		"data":    models.TokenResponse{AccessToken: accessToken},
	})
}
