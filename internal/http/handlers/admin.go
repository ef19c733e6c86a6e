package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rexagon/internal/domain"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

type NewsRequest struct {
	Title string `json:"baslik" binding:"required,min=3,max=200"`
	Body  string `json:"icerik" binding:"required,min=1"`
}

type MarketItemRequest struct {
	Name        string  `json:"isim" binding:"required,min=2,max=100"`
	Description string  `json:"aciklama" binding:"required"`
	Price       float64 `json:"fiyat" binding:"required,gt=0"`
	Discount    float64 `json:"indirim" binding:"gte=0,lte=100"`
	Stock       int     `json:"stok" binding:"gte=0"`
	Category    string  `json:"kategori" binding:"required"`
	Image       *string `json:"gorsel"`
}

type ThemeRequest struct {
	Name  string  `json:"isim" binding:"required,min=2,max=100"`
	Image string  `json:"gorsel" binding:"required"`
	Price float64 `json:"fiyat" binding:"gte=0"`
}

// ---- users ----

func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.UserRepo.GetAll(c.Request.Context(), 1000)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kullanıcılar alınamadı"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminUpdateUser applies each supplied query parameter independently:
// kredi goes through the ledger's balance overwrite, the rest are plain
// field updates. Absent parameters are left untouched.
func (h *Handler) AdminUpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	if raw, ok := c.GetQuery("kredi"); ok {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Geçersiz kredi değeri"})
			return
		}
		if err := h.Ledger.SetBalance(ctx, userID, amount); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidAmount):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Geçersiz kredi değeri"})
			case errors.Is(err, service.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"detail": "Kullanıcı bulunamadı"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kullanıcı güncellenemedi"})
			}
			return
		}
	}

	var role, badge, badgeImage *string
	if v, ok := c.GetQuery("rol"); ok {
		if v != domain.RoleUser && v != domain.RoleModerator && v != domain.RoleAdmin {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Geçersiz rol"})
			return
		}
		role = &v
	}
	if v, ok := c.GetQuery("yetki"); ok {
		badge = &v
	}
	if v, ok := c.GetQuery("yetki_gorseli"); ok {
		badgeImage = &v
	}

	if role != nil || badge != nil || badgeImage != nil {
		if err := h.UserRepo.UpdateBadge(ctx, userID, role, badge, badgeImage); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Kullanıcı bulunamadı"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kullanıcı güncellenemedi"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kullanıcı güncellendi"})
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	if err := h.UserRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Kullanıcı bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kullanıcı silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kullanıcı silindi"})
}

// ---- market ----

func (h *Handler) AdminCreateMarketItem(c *gin.Context) {
	var req MarketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	item := &domain.MarketItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
	}
	if err := h.MarketRepo.Create(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürün oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ürün oluşturuldu", "id": item.ID})
}

func (h *Handler) AdminUpdateMarketItem(c *gin.Context) {
	var req MarketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	item := &domain.MarketItem{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
	}
	if err := h.MarketRepo.Update(c.Request.Context(), item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Ürün bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürün güncellenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ürün güncellendi"})
}

func (h *Handler) AdminDeleteMarketItem(c *gin.Context) {
	if err := h.MarketRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Ürün bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Ürün silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ürün silindi"})
}

// ---- news ----

func (h *Handler) AdminCreateNews(c *gin.Context) {
	adminID := c.GetString("user_id")

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	item := &domain.News{Title: req.Title, Body: req.Body, AuthorID: adminID}
	if err := h.NewsRepo.Create(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Haber oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Haber oluşturuldu", "id": item.ID})
}

func (h *Handler) AdminUpdateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := h.NewsRepo.Update(c.Request.Context(), c.Param("id"), req.Title, req.Body); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Haber bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Haber güncellenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Haber güncellendi"})
}

func (h *Handler) AdminDeleteNews(c *gin.Context) {
	if err := h.NewsRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Haber bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Haber silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Haber silindi"})
}

// ---- reports ----

func (h *Handler) AdminReports(c *gin.Context) {
	reports, err := h.ReportRepo.List(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Raporlar alınamadı"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) AdminDeleteReport(c *gin.Context) {
	if err := h.ReportRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Rapor bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Rapor silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rapor silindi"})
}

// ---- themes ----

func (h *Handler) AdminCreateTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	theme := &domain.Theme{Name: req.Name, Image: req.Image, Price: req.Price}
	if err := h.ThemeRepo.Create(c.Request.Context(), theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Tema oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tema oluşturuldu", "id": theme.ID})
}

func (h *Handler) AdminDeleteTheme(c *gin.Context) {
	if err := h.ThemeRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Tema bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Tema silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tema silindi"})
}

// ---- forum moderation ----

func (h *Handler) AdminDeleteForumTopic(c *gin.Context) {
	if err := h.ForumRepo.DeleteTopic(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Konu bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Konu silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Konu ve cevapları silindi"})
}

func (h *Handler) AdminDeleteForumReply(c *gin.Context) {
	if err := h.ForumRepo.DeleteReply(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrReplyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Cevap bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Cevap silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cevap silindi"})
}
