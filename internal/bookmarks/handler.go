package bookmarks

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newshub/internal/auth"
	"newshub/internal/push"
	"newshub/pkg/models"
)

// Store is the persistence seam; *Repo is the sqlite implementation.
type Store interface {
	Upsert(ctx context.Context, b models.Bookmark) error
	Delete(ctx context.Context, userID, id string) (bool, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.Bookmark, int, error)
	Get(ctx context.Context, userID, id string) (*models.Bookmark, error)
	GetByURL(ctx context.Context, userID, url string) (*models.Bookmark, error)
}

type Handler struct {
	Store Store
	Hub   *push.Hub
}

func NewHandler(store Store, hub *push.Hub) *Handler {
	return &Handler{Store: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookmarks", h.list)
	rg.POST("/bookmarks", h.save)
	rg.GET("/bookmarks/:id", h.getOne)
	rg.DELETE("/bookmarks/:id", h.remove)
}

type saveReq struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URLToImage  string `json:"urlToImage"`
	SourceName  string `json:"source_name"`
	PublishedAt string `json:"publishedAt"`
}

func (h *Handler) save(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	req.Title = strings.TrimSpace(req.Title)
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	b := models.Bookmark{
		ID:          uuid.NewString(),
		UserID:      claims.UserID,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		URLToImage:  req.URLToImage,
		SourceName:  req.SourceName,
		PublishedAt: req.PublishedAt,
	}

	if err := h.Store.Upsert(c.Request.Context(), b); err != nil {
		slog.Error("bookmark save failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	// return the canonical stored row (existing id survives an upsert)
	saved, err := h.Store.GetByURL(c.Request.Context(), claims.UserID, req.URL)
	if err != nil || saved == nil {
		slog.Error("bookmark fetch after save failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}

	if h.Hub != nil {
		ev := push.BookmarkEvent{
			Type:   "bookmark.update",
			UserID: claims.UserID,
			URL:    saved.URL,
			Title:  saved.Title,
			At:     time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Store.List(c.Request.Context(), claims.UserID, limit, offset)
	if err != nil {
		slog.Error("bookmark list failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	b, err := h.Store.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	existing, err := h.Store.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		slog.Error("bookmark lookup failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	ok, err := h.Store.Delete(c.Request.Context(), claims.UserID, id)
	if err != nil {
		slog.Error("bookmark delete failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Hub != nil && existing != nil {
		ev := push.BookmarkEvent{
			Type:   "bookmark.delete",
			UserID: claims.UserID,
			URL:    existing.URL,
			At:     time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
