package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/constants"
	apierrors "github.com/petlink/petlink-api/internal/errors"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/services"
)

// RequireAuth resolves the bearer token to a live user and stores it in the
// request context. Missing or invalid tokens abort with 401; a token naming a
// missing or soft-deleted user aborts with 404.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, constants.AuthHeaderPrefix) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, constants.AuthHeaderPrefix)
		user, err := authService.ResolveToken(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				apierrors.Unauthorized(c, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				apierrors.NotFound(c, err.Error())
			default:
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
