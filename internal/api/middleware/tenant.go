// internal/api/middleware/tenant.go
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// tenantKey is the gin context key the resolved tenant id is stored
// under.
const tenantKey = "tenant_user_id"

// Tenant resolves the tenant scope from the X-User-ID header and
// makes it available to handlers. Every inventory and transaction
// read/write downstream is filtered to this id; requests without a
// usable tenant never reach a handler.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-ID header"})
			return
		}

		c.Set(tenantKey, userID)
		c.Next()
	}
}

// TenantID returns the tenant id resolved by the Tenant middleware.
func TenantID(c *gin.Context) int64 {
	return c.GetInt64(tenantKey)
}
