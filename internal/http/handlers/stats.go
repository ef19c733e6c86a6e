package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ServerStats(c *gin.Context) {
	stats, err := h.Stats.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "İstatistikler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
