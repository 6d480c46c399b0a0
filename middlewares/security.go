package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders memasang header keamanan standar untuk semua respons.
// API ini hanya dikonsumsi dashboard internal, jadi kebijakannya ketat.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		c.Next()
	}
}
