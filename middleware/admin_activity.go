package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps admin URL segments to resource types
var pathToResourceType = map[string]string{
	"homepage-sections": "homepage_section",
	"banners":           "banner",
	"promotions":        "promotion",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ════════════════════════════════════════════════════════════
// Admin Activity Logging
// ════════════════════════════════════════════════════════════

// AdminActivityLogger records every admin write (homepage layout, banners,
// promotions) with its outcome. Reads pass through untouched.
func AdminActivityLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, isWrite := methodToActionVerb[c.Request.Method]
		if !isWrite {
			c.Next()
			return
		}

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("action", verb+"_"+resourceType),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", c.Param("id")),
			zap.Int("status", status),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.GetHeader("User-Agent")),
		}
		if status >= 200 && status < 300 {
			logger.Info("[activity] success", fields...)
			return
		}
		logger.Warn("[activity] failed", fields...)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType finds the resource type from the URL path
// e.g., "/api/v1/admin/banners/<uuid>" → "banner"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if isIDParam(parts[i]) {
			continue
		}
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}
	return ""
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	if segment == ":id" || segment == "" {
		return true
	}
	_, err := uuid.Parse(segment)
	return err == nil
}
