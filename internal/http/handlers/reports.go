package handlers

import (
	"net/http"

	"rexagon/internal/domain"
	"rexagon/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type ReportRequest struct {
	Topic       string `json:"konu" binding:"required"`
	Title       string `json:"baslik" binding:"required,min=3,max=200"`
	Description string `json:"aciklama" binding:"required,min=1"`
}

// CreateReport files a support ticket on behalf of the caller.
func (h *Handler) CreateReport(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	report := &domain.Report{
		Topic:       req.Topic,
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    userID,
	}
	if err := h.ReportRepo.Create(c.Request.Context(), report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Rapor oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rapor gönderildi", "id": report.ID})
}
