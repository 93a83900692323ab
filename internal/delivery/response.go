package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func EntityResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// ErrorHandler answers for handlers that pushed an error with c.Error and
// wrote nothing themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		MessageResponse(c, http.StatusInternalServerError, MsgInternalError)
	}
}
