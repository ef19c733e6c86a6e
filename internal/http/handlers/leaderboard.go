package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const leaderboardLimit = 10

func (h *Handler) TopCredits(c *gin.Context) {
	users, err := h.UserRepo.TopByCredits(c.Request.Context(), leaderboardLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Sıralama alınamadı"})
		return
	}

	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, u.PublicView())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) LatestRegistrations(c *gin.Context) {
	users, err := h.UserRepo.LatestRegistrations(c.Request.Context(), leaderboardLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Sıralama alınamadı"})
		return
	}

	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, u.PublicView())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) LatestPurchases(c *gin.Context) {
	purchases, err := h.PurchaseRepo.Latest(c.Request.Context(), leaderboardLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Sıralama alınamadı"})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (h *Handler) LatestTopUps(c *gin.Context) {
	topUps, err := h.TxRepo.LatestTopUps(c.Request.Context(), leaderboardLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Sıralama alınamadı"})
		return
	}
	c.JSON(http.StatusOK, topUps)
}
