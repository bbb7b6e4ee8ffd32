package core

import "github.com/gin-gonic/gin"

// respondMessage sends the unified {"message": ...} payload.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
