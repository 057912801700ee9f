// internal/api/middleware.go
package api

import (
	"strconv"
	"strings"
	"time"

	"giftwise/internal/auth"
	stderrors "giftwise/internal/common/errors"
	"giftwise/internal/common/metrics"
	"giftwise/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserKey   = "auth.user"
	ctxClaimsKey = "auth.claims"
)

func (r *Router) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		r.logger.Info("request handled", map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

func (r *Router) httpMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// bearerOrCookie extracts the auth token from the Authorization header
// or, failing that, the auth cookie.
func (r *Router) bearerOrCookie(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	token, err := c.Cookie(r.deps.Cookie.Name)
	if err != nil {
		return ""
	}
	return token
}

func (r *Router) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := r.bearerOrCookie(c)
		if token == "" {
			r.errors.Respond(c, stderrors.NewNotAuthenticatedError())
			return
		}

		user, claims, err := r.deps.Auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			r.errors.Respond(c, err)
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// optionalAuth attaches an identity when a valid token is present and
// lets the request through anonymously otherwise.
func (r *Router) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := r.bearerOrCookie(c)
		if token == "" {
			c.Next()
			return
		}

		user, claims, err := r.deps.Auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

func (r *Router) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			r.errors.Respond(c, stderrors.NewNotAuthorizedError())
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func currentClaims(c *gin.Context) *auth.Claims {
	value, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
