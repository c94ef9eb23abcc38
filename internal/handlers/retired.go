package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Retired marks a decommissioned resource group. The routes stay registered
// so callers get a deliberate 410 instead of a 404 that suggests a typo; no
// input ever changes the answer.
func Retired(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusGone, gin.H{"error": message})
	}
}
