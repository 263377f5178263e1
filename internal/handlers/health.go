package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"message":   "Palette Picker is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func Root(c *gin.Context) {
	c.String(200, "Welcome to Palette Picker!")
}
