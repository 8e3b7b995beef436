package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain"
	jwtsvc "hotelbooking/internal/pkg/jwt"
)

func authRouter(jwt *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", Auth(jwt), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := authRouter(jwt)

	token, err := jwt.GenerateToken(42, domain.RoleClient)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuth_Rejections(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := authRouter(jwt)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	signer := jwtsvc.New("other-secret", time.Hour)
	r := authRouter(jwtsvc.New("test-secret", time.Hour))

	token, err := signer.GenerateToken(1, domain.RoleClient)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	jwt := jwtsvc.New("test-secret", time.Hour)
	r := authRouter(jwt)

	adminToken, err := jwt.GenerateToken(1, domain.RoleAdmin)
	require.NoError(t, err)
	clientToken, err := jwt.GenerateToken(2, domain.RoleClient)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
