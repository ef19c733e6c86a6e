package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rexagon/internal/http/middleware"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

// WalletHistory returns the caller's ledger history, newest first.
func (h *Handler) WalletHistory(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	txs, err := h.TxRepo.GetByUserID(c.Request.Context(), userID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Geçmiş alınamadı"})
		return
	}

	c.JSON(http.StatusOK, txs)
}

type TopUpRequest struct {
	Amount float64 `json:"tutar" binding:"required,gt=0"`
}

// TopUp credits the wallet. Payment-provider checkout is pending; the
// full amount is applied with its ledger record in one transaction so
// the two halves can never diverge.
func (h *Handler) TopUp(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	// The checkout form sends tutar as a query parameter; a JSON body
	// is accepted as well.
	amount, err := strconv.ParseFloat(c.Query("tutar"), 64)
	if err != nil {
		var req TopUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz tutar"})
			return
		}
		amount = req.Amount
	}

	tx, newBalance, err := h.Ledger.TopUp(c.Request.Context(), userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz tutar"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ödeme başlatılamadı"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Ödeme başlatıldı",
		"transaction_id": tx.ID,
		"yeni_kredi":     newBalance,
	})
}
