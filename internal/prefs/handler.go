package prefs

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"newshub/internal/auth"
	"newshub/pkg/models"
)

type Store interface {
	Get(ctx context.Context, userID string) (*models.Preference, error)
	Upsert(ctx context.Context, p models.Preference) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/preferences", h.get)
	rg.PUT("/preferences", h.put)
}

func (h *Handler) get(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.Store.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		slog.Error("preferences get failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		// never saved: answer with the defaults the news endpoints use
		p = &models.Preference{
			UserID:     claims.UserID,
			Country:    "in",
			Language:   "en",
			Categories: []string{},
			UpdatedAt:  time.Now().UTC(),
		}
	}
	c.JSON(http.StatusOK, p)
}

type putReq struct {
	Country    string   `json:"country"`
	Language   string   `json:"language"`
	Categories []string `json:"categories"`
}

func (h *Handler) put(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req putReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	p := models.Preference{
		UserID:     claims.UserID,
		Country:    strings.TrimSpace(strings.ToLower(req.Country)),
		Language:   strings.TrimSpace(strings.ToLower(req.Language)),
		Categories: req.Categories,
	}
	if p.Country == "" {
		p.Country = "in"
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}

	if err := h.Store.Upsert(c.Request.Context(), p); err != nil {
		slog.Error("preferences save failed", "user", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Store.Get(c.Request.Context(), claims.UserID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
