// Package response renders the API's uniform envelope. Every endpoint
// answers either {"success":true,"data":{...}} or
// {"success":false,"error":{"code","message"}} so clients decode one
// shape.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
