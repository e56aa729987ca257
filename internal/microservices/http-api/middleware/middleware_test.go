package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adminjwt "justco/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupAdminRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/chat/room/:code", AdminMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminMiddleware(t *testing.T) {
	validToken, err := adminjwt.GenerateAdminToken(testSecret, "ops", time.Hour)
	require.NoError(t, err)

	memberToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, adminjwt.AdminClaims{
		Role: "member",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{"Disabled", "", "Bearer " + validToken, http.StatusForbidden},
		{"MissingHeader", testSecret, "", http.StatusUnauthorized},
		{"BadFormat", testSecret, "Token " + validToken, http.StatusUnauthorized},
		{"InvalidToken", testSecret, "Bearer nope", http.StatusUnauthorized},
		{"NotAdmin", testSecret, "Bearer " + memberToken, http.StatusForbidden},
		{"Valid", testSecret, "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAdminRouter(tt.secret)

			req, _ := http.NewRequest(http.MethodDelete, "/chat/room/abc123", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins))
		r.GET("/chat/rooms", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
		return r
	}

	t.Run("AnyOrigin", func(t *testing.T) {
		r := newRouter([]string{"*"})
		req, _ := http.NewRequest(http.MethodGet, "/chat/rooms", nil)
		req.Header.Set("Origin", "https://client.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		r := newRouter([]string{"*"})
		req, _ := http.NewRequest(http.MethodOptions, "/chat/rooms", nil)
		req.Header.Set("Origin", "https://client.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("AllowList", func(t *testing.T) {
		r := newRouter([]string{"https://app.example"})

		req, _ := http.NewRequest(http.MethodGet, "/chat/rooms", nil)
		req.Header.Set("Origin", "https://app.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

		req, _ = http.NewRequest(http.MethodGet, "/chat/rooms", nil)
		req.Header.Set("Origin", "https://evil.example")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
