package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// UserLoader fetches the account behind a validated token
type UserLoader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// JWTAuth validates the bearer token and loads the account into the request
// context. Requests without a valid token are rejected with 401.
func JWTAuth(jwtService *auth.JWTService, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Authorization token required")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid authorization token"
			if err == auth.ErrExpiredToken {
				code = dto.ErrorCodeExpiredToken
				message = "Authorization token expired"
			}
			abortUnauthorized(c, code, message)
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Account no longer exists")
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalJWTAuth loads the account when a valid bearer token is present
// and lets the request through anonymously otherwise. Used on read routes
// where approved content is public but owners see more.
func OptionalJWTAuth(jwtService *auth.JWTService, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// RoleRequired rejects requests from accounts outside the given roles.
// Must run after JWTAuth.
func RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		for _, role := range roles {
			if user.RoleType == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient permissions"),
		})
	}
}

// CurrentUser returns the authenticated account, or nil outside JWTAuth
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}
