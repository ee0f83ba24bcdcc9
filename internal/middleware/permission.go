package middleware

import (
	"context"
	"net/http"

	autherrors "github.com/JohanKruger/traindev-api/internal/auth/errors"
	"github.com/JohanKruger/traindev-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// PermissionChecker probes the grant table for a (username, code) pair.
// Implemented by the user-permission service.
type PermissionChecker interface {
	HasPermission(ctx context.Context, username, permissionCode string) (bool, error)
}

// RequirePermission guards a route behind a permission code. Must run after
// AuthMiddleware so the username is on the context.
func RequirePermission(checker PermissionChecker, code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
			c.Abort()
			return
		}

		ok, err := checker.HasPermission(c.Request.Context(), username, code)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
			c.Abort()
			return
		}
		if !ok {
			errObj := autherrors.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
