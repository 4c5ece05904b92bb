package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/recipe-api/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Both rejection paths below fail before the session store is consulted, so
// no Redis client is needed.
func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	g := r.Group("/api")
	g.Use(Auth(nil, jwt))
	g.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func TestAuthMissingCookie(t *testing.T) {
	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	r := newAuthRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body %s)", w.Code, w.Body.String())
	}
}

func TestAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	r := newAuthRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body %s)", w.Code, w.Body.String())
	}
}

func TestAuthTokenSignedWithWrongSecret(t *testing.T) {
	other := helpers.NewJWTManager("other-secret", "refresh", time.Hour, 24*time.Hour)
	token, _, err := other.GenerateAccessToken("user-1", "sid-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	r := newAuthRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body %s)", w.Code, w.Body.String())
	}
}
