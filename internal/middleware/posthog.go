package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/sme_tax_estimator/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := RouteEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		// Route params are IDs only; amounts never leave the service.
		if businessID := c.Param("business_id"); businessID != "" {
			props["business_id"] = businessID
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// RouteEventName turns a route template into an event name,
// e.g. GET /api/v1/businesses/:business_id -> get_api_v1_businesses_business_id.
func RouteEventName(method, fullPath string) string {
	path := strings.Trim(fullPath, "/")
	if path == "" {
		return ""
	}
	replacer := strings.NewReplacer("/", "_", ":", "", ".", "_", "-", "_")
	return strings.ToLower(method) + "_" + replacer.Replace(path)
}
