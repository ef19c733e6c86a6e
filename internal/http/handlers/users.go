package handlers

import (
	"net/http"

	"rexagon/internal/http/middleware"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicProfile returns a user's public profile by username.
func (h *Handler) PublicProfile(c *gin.Context) {
	user, err := h.UserRepo.GetByUsername(c.Request.Context(), c.Param("kullanici_adi"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Kullanıcı bulunamadı"})
		return
	}

	c.JSON(http.StatusOK, user.PublicView())
}

type BioRequest struct {
	Bio string `json:"biyografi" binding:"max=1000"`
}

func (h *Handler) UpdateBio(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req BioRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz biyografi"})
		return
	}

	if err := h.UserRepo.UpdateBio(c.Request.Context(), userID, req.Bio); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Profil güncellenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Biyografi güncellendi"})
}

type PasswordRequest struct {
	OldPassword string `json:"eski_sifre" binding:"required"`
	NewPassword string `json:"yeni_sifre" binding:"required,min=6"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req PasswordRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz şifre"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		return
	}

	if !service.CheckPassword(user.PasswordHash, req.OldPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Mevcut şifre hatalı"})
		return
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Şifre güncellenemedi"})
		return
	}

	if err := h.UserRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Şifre güncellenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şifre güncellendi"})
}

type BackdropRequest struct {
	Backdrop *string `json:"profil_arka_plani"`
}

// UpdateBackdrop sets the free-form profile background image.
func (h *Handler) UpdateBackdrop(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	// Sent as a query parameter by the profile form; JSON also works.
	var backdrop *string
	if v, ok := c.GetQuery("profil_arka_plani"); ok {
		backdrop = &v
	} else {
		var req BackdropRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz profil"})
			return
		}
		backdrop = req.Backdrop
	}

	if err := h.UserRepo.UpdateBackdrop(c.Request.Context(), userID, backdrop); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Profil güncellenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil güncellendi"})
}
