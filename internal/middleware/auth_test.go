package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	jwtsvc "nexyatra/internal/pkg/jwt"
)

func newGuardedRouter(jwt *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", RequireAdmin(jwt))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64("user_id")})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := newGuardedRouter(jwt)

	token, err := jwt.GenerateToken(42, "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	w := get(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdmin_MissingOrMalformedHeader(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := newGuardedRouter(jwt)

	for _, header := range []string{"", "Basic abc", "Bearer ", "token-without-scheme"} {
		if w := get(r, header); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAdmin_WrongSecretAndExpired(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := newGuardedRouter(jwt)

	other := jwtsvc.New("other-secret", time.Hour)
	token, _ := other.GenerateToken(1, "admin")
	if w := get(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("foreign token: expected 401, got %d", w.Code)
	}

	expired := jwtsvc.New("test-secret", -time.Minute)
	token, _ = expired.GenerateToken(1, "admin")
	if w := get(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", w.Code)
	}
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := newGuardedRouter(jwt)

	token, _ := jwt.GenerateToken(7, "viewer")
	if w := get(r, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
