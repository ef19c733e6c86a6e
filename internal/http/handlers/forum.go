package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rexagon/internal/domain"
	"rexagon/internal/http/middleware"
	"rexagon/internal/repository"

	"github.com/gin-gonic/gin"
)

type TopicRequest struct {
	Title    string `json:"baslik" binding:"required,min=3,max=200"`
	Body     string `json:"icerik" binding:"required,min=1"`
	Category string `json:"kategori" binding:"required"`
}

type ReplyRequest struct {
	Body string `json:"icerik" binding:"required,min=1"`
}

func (h *Handler) ForumCategories(c *gin.Context) {
	categories, err := h.ForumRepo.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Kategoriler alınamadı"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ForumTopics(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	topics, err := h.ForumRepo.TopicsByCategory(c.Request.Context(), c.Param("kategori"), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Konular alınamadı"})
		return
	}
	c.JSON(http.StatusOK, topics)
}

// ForumTopic returns a topic together with its replies, oldest first.
func (h *Handler) ForumTopic(c *gin.Context) {
	ctx := c.Request.Context()
	topicID := c.Param("id")

	topic, err := h.ForumRepo.GetTopic(ctx, topicID)
	if err != nil {
		if errors.Is(err, repository.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Konu bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Konu alınamadı"})
		return
	}

	replies, err := h.ForumRepo.Replies(ctx, topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Cevaplar alınamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"konu": topic, "cevaplar": replies})
}

func (h *Handler) CreateForumTopic(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	topic := &domain.ForumTopic{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		AuthorID: userID,
	}
	if err := h.ForumRepo.CreateTopic(c.Request.Context(), topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Konu oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Konu oluşturuldu", "id": topic.ID})
}

func (h *Handler) CreateForumReply(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	reply := &domain.ForumReply{
		TopicID:  c.Param("id"),
		Body:     req.Body,
		AuthorID: userID,
	}
	if err := h.ForumRepo.CreateReply(c.Request.Context(), reply); err != nil {
		if errors.Is(err, repository.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Konu bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Cevap eklenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cevap eklendi", "id": reply.ID})
}
