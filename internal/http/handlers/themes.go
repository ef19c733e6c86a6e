package handlers

import (
	"errors"
	"net/http"

	"rexagon/internal/http/middleware"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

// Themes lists the catalog. With a valid bearer token the entries carry
// ownership and active flags; anonymously it is the bare catalog.
func (h *Handler) Themes(c *gin.Context) {
	ctx := c.Request.Context()

	if userID, ok := middleware.GetUserID(c); ok {
		themes, err := h.ThemeRepo.ListForUser(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Temalar alınamadı"})
			return
		}
		c.JSON(http.StatusOK, themes)
		return
	}

	themes, err := h.ThemeRepo.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Temalar alınamadı"})
		return
	}
	c.JSON(http.StatusOK, themes)
}

// UnlockTheme buys (or freely claims) a theme for the caller.
func (h *Handler) UnlockTheme(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.Ledger.UnlockTheme(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrThemeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Tema bulunamadı"})
		case errors.Is(err, service.ErrAlreadyOwned), errors.Is(err, repository.ErrOwnershipExists):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Bu temaya zaten sahipsiniz"})
		case errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Yetersiz kredi"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Tema satın alınamadı"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tema satın alındı"})
}

// ActivateTheme sets an unlocked theme as the active background.
func (h *Handler) ActivateTheme(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.Ledger.ActivateTheme(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrThemeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Tema bulunamadı"})
		case errors.Is(err, service.ErrThemeNotOwned):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Bu temaya sahip değilsiniz"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Tema etkinleştirilemedi"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tema etkinleştirildi"})
}

// RemoveActiveTheme clears the active pointer; ownership is untouched.
func (h *Handler) RemoveActiveTheme(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.ThemeRepo.ClearActive(c.Request.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Tema kaldırılamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tema kaldırıldı"})
}
