package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saathi/internal/auth"
	"saathi/internal/observability"
)

const (
	userContextKey  = "saathi.user"
	requestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware assigns each request an ID, honoring one supplied by
// the client.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// AuthMiddleware validates the bearer token and stores the account on the
// request context.
func AuthMiddleware(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		user, err := service.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated account set by AuthMiddleware.
func currentUser(c *gin.Context) (auth.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return auth.User{}, false
	}
	user, ok := value.(auth.User)
	return user, ok
}

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware(metrics *observability.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
