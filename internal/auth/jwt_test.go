package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func testTokens() TokenService {
	return TokenService{
		Secret:   []byte("unit-test-secret"),
		Issuer:   "newshub-test",
		Duration: time.Hour,
	}
}

func TestSignAndParse(t *testing.T) {
	ts := testTokens()
	u := &User{ID: "u1", Username: "asha"}

	token, exp, err := ts.Sign(u)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", token)
	if !exp.After(time.Now()) {
		t.Fatal("expiry should be in the future")
	}

	claims, err := ts.Parse(token)
	assert.Equal(t, nil, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, "newshub-test", claims.Issuer)
}

func TestParse_WrongSecretRejected(t *testing.T) {
	ts := testTokens()
	token, _, _ := ts.Sign(&User{ID: "u1", Username: "asha"})

	other := TokenService{Secret: []byte("different"), Issuer: ts.Issuer, Duration: ts.Duration}
	_, err := other.Parse(token)
	assert.NotEqual(t, nil, err)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := testTokens()

	r := gin.New()
	r.GET("/me", AuthMiddleware(ts), func(c *gin.Context) {
		claims := MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID})
	})

	// no token
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token
	token, _, _ := ts.Sign(&User{ID: "u1", Username: "asha"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
