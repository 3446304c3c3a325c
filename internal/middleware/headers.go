package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps authenticated pages out of shared caches. Booking lists and
// back-office pages are per-user; a cached copy served to the wrong visitor
// would leak names and booking times.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store")
		c.Writer.Header().Set("Pragma", "no-cache")

		c.Next()
	}
}
