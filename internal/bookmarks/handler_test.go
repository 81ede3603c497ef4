package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"newshub/internal/auth"
	"newshub/pkg/models"
)

type fakeStore struct {
	items map[string]models.Bookmark // keyed by id
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]models.Bookmark)}
}

func (f *fakeStore) Upsert(ctx context.Context, b models.Bookmark) error {
	if f.err != nil {
		return f.err
	}
	for id, existing := range f.items {
		if existing.UserID == b.UserID && existing.URL == b.URL {
			b.ID = id
			break
		}
	}
	b.SavedAt = time.Now().UTC()
	f.items[b.ID] = b
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.items[id]
	if !ok || b.UserID != userID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeStore) List(ctx context.Context, userID string, limit, offset int) ([]models.Bookmark, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []models.Bookmark
	for _, b := range f.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, len(out), nil
}

func (f *fakeStore) Get(ctx context.Context, userID, id string) (*models.Bookmark, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.items[id]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeStore) GetByURL(ctx context.Context, userID, url string) (*models.Bookmark, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.items {
		if b.UserID == userID && b.URL == url {
			return &b, nil
		}
	}
	return nil, nil
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.CtxClaimsKey, &auth.Claims{UserID: userID, Username: "tester"})
		c.Next()
	}
}

func newTestRouter(store Store, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/users")
	g.Use(asUser(userID))
	NewHandler(store, nil).RegisterRoutes(g)
	return r
}

func TestSave_CreatesBookmark(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "u1")

	body := `{"url":"https://e.com/story","title":"Story","description":"d","source_name":"Example"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users/bookmarks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Bookmark
	json.Unmarshal(w.Body.Bytes(), &saved)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, "https://e.com/story", saved.URL)
	assert.NotEqual(t, "", saved.ID)
	assert.Equal(t, 1, len(store.items))
}

func TestSave_SameURLUpsertsKeepingID(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "u1")

	post := func(title string) models.Bookmark {
		body := `{"url":"https://e.com/story","title":"` + title + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users/bookmarks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		var b models.Bookmark
		json.Unmarshal(w.Body.Bytes(), &b)
		return b
	}

	first := post("v1")
	second := post("v2")

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Title)
	assert.Equal(t, 1, len(store.items))
}

func TestSave_MissingURLIs400(t *testing.T) {
	r := newTestRouter(newFakeStore(), "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users/bookmarks", strings.NewReader(`{"title":"no url"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_OnlyOwnBookmarks(t *testing.T) {
	store := newFakeStore()
	store.items["b1"] = models.Bookmark{ID: "b1", UserID: "u1", URL: "https://e.com/1", Title: "mine"}
	store.items["b2"] = models.Bookmark{ID: "b2", UserID: "u2", URL: "https://e.com/2", Title: "theirs"}

	r := newTestRouter(store, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/bookmarks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Total int               `json:"total"`
		Items []models.Bookmark `json:"items"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "mine", res.Items[0].Title)
}

func TestDelete_NotFoundIs404(t *testing.T) {
	r := newTestRouter(newFakeStore(), "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/users/bookmarks/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_RemovesBookmark(t *testing.T) {
	store := newFakeStore()
	store.items["b1"] = models.Bookmark{ID: "b1", UserID: "u1", URL: "https://e.com/1", Title: "mine"}
	r := newTestRouter(store, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/users/bookmarks/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, len(store.items))
}

func TestList_StoreErrorIs500(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("db down")
	r := newTestRouter(store, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/bookmarks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
