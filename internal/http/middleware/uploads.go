package middleware

import "github.com/gin-gonic/gin"

// UploadHeaders запрещает загруженным файлам исполнять код в origin сайта.
// SVG открывается как картинка, но в песочнице без скриптов.
func UploadHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
		c.Next()
	}
}
