package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EnforceJSON rejects POST requests whose body is not JSON. A wrong
// Content-Type and a syntactically broken body both yield 415, before
// any handler runs; shape errors inside valid JSON remain the handlers'
// 400s. The body is restored so binding still works downstream.
func EnforceJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported Media Type"})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unreadable request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) > 0 && !json.Valid(body) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "Invalid JSON format"})
			return
		}

		c.Next()
	}
}
