package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InvalidateOnWrite вызывает invalidate после каждого успешного изменяющего запроса.
func InvalidateOnWrite(invalidate func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if invalidate == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if c.Writer.Status() < http.StatusBadRequest {
			invalidate()
		}
	}
}
