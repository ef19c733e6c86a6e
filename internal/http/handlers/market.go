package handlers

import (
	"errors"
	"net/http"

	"rexagon/internal/http/middleware"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) MarketCategories(c *gin.Context) {
	cats, err := h.MarketRepo.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kategoriler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// MarketItems lists the whole catalog.
func (h *Handler) MarketItems(c *gin.Context) {
	items, err := h.MarketRepo.List(c.Request.Context(), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürünler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarketItemsByCategory lists one category ("Tümü" lists everything).
func (h *Handler) MarketItemsByCategory(c *gin.Context) {
	items, err := h.MarketRepo.List(c.Request.Context(), c.Param("kategori"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürünler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) MarketItem(c *gin.Context) {
	item, err := h.MarketRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Ürün bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) BestSellers(c *gin.Context) {
	items, err := h.PurchaseRepo.BestSellers(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürünler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Purchase commits a buy through the ledger. Preconditions (stock,
// balance) are checked under row locks server-side; the UI's
// confirm-then-commit flow adds nothing here.
func (h *Handler) Purchase(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	result, err := h.Ledger.Purchase(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			middleware.Purchases.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"detail": "Ürün bulunamadı"})
		case errors.Is(err, service.ErrOutOfStock):
			middleware.Purchases.WithLabelValues("out_of_stock").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Stok tükendi"})
		case errors.Is(err, service.ErrInsufficientFunds):
			middleware.Purchases.WithLabelValues("insufficient_funds").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Yetersiz kredi"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		default:
			middleware.Purchases.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Satın alma başarısız"})
		}
		return
	}

	middleware.Purchases.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"message":           "Satın alma başarılı",
		"yeni_kredi":        result.NewBalance,
		"kalan_stok":        result.NewStock,
		"minecraft_command": result.Command,
	})
}
