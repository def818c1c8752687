package middleware

import (
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// Messages returned by the token gate
const (
	MsgNoToken         = "Access denied. No token provided."
	MsgInvalidToken    = "Invalid or expired token."
	MsgMissingIdentity = "Authentication required"
)

var roleDeniedMessages = map[models.Role]string{
	models.RoleStudent: "Access denied. Student privileges required.",
	models.RoleTeacher: "Access denied. Teacher privileges required.",
	models.RoleAdmin:   "Access denied. Admin privileges required.",
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation. A missing or malformed header
// is answered with 401, a token that fails verification with 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextKeyUserID, claims.ID)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RoleRequired middleware to check if user has required role. It trusts the
// claims JWTAuth stored and never touches the store.
func (m *AuthMiddleware) RoleRequired(requiredRole models.Role) gin.HandlerFunc {
	denied, ok := roleDeniedMessages[requiredRole]
	if !ok {
		denied = "Access denied"
	}

	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, MsgMissingIdentity))
			return
		}

		if r, ok := role.(models.Role); !ok || r != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, denied))
			return
		}

		c.Next()
	}
}

// GetUserID returns the account id of the current request's token
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
