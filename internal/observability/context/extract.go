package context

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func RequestIDFromGin(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if ctx := c.Request.Context(); ctx != nil {
		if value := RequestIDFromContext(ctx); value != "" {
			return value
		}
	}
	if value := strings.TrimSpace(c.GetString("request_id")); value != "" {
		return value
	}
	return ""
}

func OrgIDFromGin(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	if ctx := c.Request.Context(); ctx != nil {
		if value := OrgIDFromContext(ctx); value != 0 {
			return value
		}
	}
	if raw, ok := c.Get("org_id"); ok {
		switch value := raw.(type) {
		case int64:
			return value
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err == nil {
				return parsed
			}
		}
	}
	return 0
}
