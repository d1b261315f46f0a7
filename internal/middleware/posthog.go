package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives analytics events. utils.PosthogClientWrapper implements it.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful API calls, e.g. "/api/v1/pricing/convert" -> "api_v1_pricing_convert".
// Anonymous storefront callers are identified by client IP.
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		eventName = strings.ReplaceAll(eventName, ":", "")
		if eventName == "" {
			return
		}

		distinctID, ok := GetUserIDFromContext(c)
		if !ok {
			distinctID = "anon:" + c.ClientIP()
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		sink.Enqueue(distinctID, eventName, props)
	}
}
