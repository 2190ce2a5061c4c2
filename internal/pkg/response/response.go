package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"data": data,
	})
}

func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, errText string) {
	c.JSON(statusCode, gin.H{
		"error": errText,
	})
}

func ErrorWithMessage(c *gin.Context, statusCode int, errText string, message string) {
	c.JSON(statusCode, gin.H{
		"error":   errText,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, errText string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   errText,
		"details": details,
	})
}

// Internal records err on the context for the error logger and answers 500
// without exposing it.
func Internal(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	ErrorWithMessage(c, http.StatusInternalServerError, "Internal server error", message)
}
