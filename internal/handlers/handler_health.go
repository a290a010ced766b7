package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetHealth godoc
// @Summary Liveness check
// @Description Reports service liveness; touches no core state.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
	})
}
