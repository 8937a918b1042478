// simple structured request logging

package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// Simple and effective for an internal tool; the Redis sink handles the
// pipeline-level events separately.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep the path for logging (useful after c.Next())
		c.Next()                   // run downstream handlers/middlewares
		log.Printf("%s %s %d %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start))
	}
}
