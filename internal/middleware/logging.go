package middleware

import (
	"bytes"
	"io"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request line with its body and the response status
// with elapsed time. The body is re-wrapped so handlers can still bind it.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		log.Printf("REQ: %s %s - Body: %s", c.Request.Method, c.Request.URL.Path, body)

		c.Next()

		log.Printf("RES: %d - %s %s - %v",
			c.Writer.Status(), c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}
