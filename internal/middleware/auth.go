// Package middleware provides HTTP middleware for the auth service.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ushakiran23/Ushakiran-Back/internal/models"
	"github.com/ushakiran23/Ushakiran-Back/internal/repository"
	"github.com/ushakiran23/Ushakiran-Back/internal/service"
)

// userContextKey is where the authenticated user is stored in the gin context.
const userContextKey = "auth.user"

const bearerPrefix = "Bearer "

// Authentication returns middleware that resolves the request identity from
// the Authorization header. It only ever enriches the request context: a
// missing header, a wrong scheme, an invalid token or an unknown subject all
// leave the request unauthenticated and let it continue. Rejecting requests
// is the job of whatever guards the individual route.
func Authentication(jwtService service.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil || claims.Subject == "" {
			c.Next()
			return
		}

		// Internal re-dispatch within the same request must not repeat the
		// store lookup once an identity is attached.
		if _, exists := c.Get(userContextKey); !exists {
			if user, err := userRepo.FindByEmail(c.Request.Context(), claims.Subject); err == nil {
				c.Set(userContextKey, user)
			}
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached to the request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// SetCurrentUser attaches an identity to the request context. Exposed for
// handler tests that bypass the Authentication middleware.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}
