package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pizza-delivery/models"
	"pizza-delivery/repositories"
	"pizza-delivery/utils"
)

const (
	usernameKey    = "username"
	currentUserKey = "current_user"
)

// AuthMiddleware validates the bearer token and resolves its subject against
// the user store. A token whose subject no longer matches a user is still let
// through with no current user set: each handler decides whether that is a
// 404, a 403, or irrelevant.
func AuthMiddleware(users repositories.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(usernameKey, claims.Subject)

		user, err := users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to resolve user",
			})
			c.Abort()
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}

		c.Next()
	}
}

// StaffMiddleware rejects callers without a resolved staff user.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsStaff {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User not allowed to carry out request",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware, or nil when the
// token subject matched no user record.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// Username returns the token subject set by AuthMiddleware.
func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}
