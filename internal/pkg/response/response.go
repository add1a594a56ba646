// Package response holds the JSON envelope every handler replies with.
// Successful responses wrap the payload in {"success":true,"data":...};
// errors carry a machine code and a display message.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message is for mutations whose only payload is a confirmation text.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": msg,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
