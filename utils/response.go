package utils

import "github.com/gin-gonic/gin"

// ErrorResponse builds the {"message": ...} body the admin panel displays
// verbatim. Keep the key name stable.
func ErrorResponse(message string) gin.H {
	return gin.H{"message": message}
}

func SuccessResponse(message string, data gin.H) gin.H {
	res := gin.H{"success": true, "message": message}
	for k, v := range data {
		res[k] = v
	}
	return res
}
