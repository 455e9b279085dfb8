package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const OperatorContextKey = "operatorID"

// OperatorMiddleware requires the X-Operator-ID header on every request.
// Identity itself lives with the auth collaborator upstream; the terminal
// trusts the header it is handed.
func OperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.GetHeader("X-Operator-ID")
		if operatorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(OperatorContextKey, operatorID)
		c.Next()
	}
}

// GetOperatorID extracts the operator id placed in context by OperatorMiddleware.
func GetOperatorID(c *gin.Context) (string, error) {
	if val, ok := c.Get(OperatorContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("operator ID not found in context")
}
