package handlers

import (
	"errors"
	"net/http"

	"rexagon/internal/domain"
	"rexagon/internal/http/middleware"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username       string `json:"kullanici_adi" binding:"required,min=3,max=20"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"sifre" binding:"required,min=6"`
	BirthDate      string `json:"dogum_tarihi" binding:"required"`
	PrivacyConsent bool   `json:"gizlilik_sozlesmesi"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz kayıt bilgileri"})
		return
	}

	if !req.PrivacyConsent {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Gizlilik sözleşmesini kabul etmelisiniz"})
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kayıt başarısız"})
		return
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		BirthDate:    req.BirthDate,
	}

	ctx := c.Request.Context()
	if err := h.UserRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Bu kullanıcı adı zaten kullanılıyor"})
		case errors.Is(err, repository.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Bu email zaten kullanılıyor"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kayıt başarısız"})
		}
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Kayıt başarılı",
		"access_token": token,
		"token_type":   "bearer",
	})
}

type LoginRequest struct {
	Username string `json:"kullanici_adi" binding:"required"`
	Password string `json:"sifre" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Geçersiz giriş bilgileri"})
		return
	}

	user, err := h.UserRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil || !service.CheckPassword(user.PasswordHash, req.Password) {
		// Same response for unknown user and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kullanıcı adı veya şifre hatalı"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me resolves the bearer token back to the full identity. The client
// calls this on startup to restore its session.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		return
	}

	user, err := h.UserRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
		return
	}

	c.JSON(http.StatusOK, user)
}
