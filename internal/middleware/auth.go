package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenValidator checks a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*util.Claims, error)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if t := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); t != "" {
			return t
		}
	}
	// Query fallback for plain download links.
	return c.Query("token")
}

func AuthMiddleware(v TokenValidator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := v.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, util.ErrTokenRevoked) {
				util.Error(c, http.StatusUnauthorized, err.Error())
			} else {
				log.Debug("rejected token", zap.String("path", c.FullPath()), zap.Error(err))
				util.Unauthorized(c)
			}
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

// RoleMiddleware allows the listed roles. Admins pass every check.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		allowed := user.Role == model.Admin
		for _, role := range roles {
			if user.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
