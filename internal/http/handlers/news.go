package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rexagon/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) News(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	news, err := h.NewsRepo.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Haberler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) NewsDetail(c *gin.Context) {
	item, err := h.NewsRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Haber bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Haber alınamadı"})
		return
	}
	c.JSON(http.StatusOK, item)
}
