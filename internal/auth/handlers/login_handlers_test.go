package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/architect/lostfound/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoginRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour, "test-issuer")
	login := NewLoginHandlers(tokens, "admin@example.com", "s3cret")

	router := gin.New()
	router.POST("/login/user", login.UserLogin)
	router.POST("/login/admin", login.AdminLogin)
	return router, tokens
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserLogin(t *testing.T) {
	router, tokens := setupLoginRouter(t)

	w := postJSON(router, "/login/user", map[string]string{"email": "user@example.com"})
	require.Equal(t, 200, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestUserLogin_MissingEmail(t *testing.T) {
	router, _ := setupLoginRouter(t)

	w := postJSON(router, "/login/user", map[string]string{})
	assert.Equal(t, 400, w.Code)
}

func TestAdminLogin(t *testing.T) {
	router, tokens := setupLoginRouter(t)

	w := postJSON(router, "/login/admin", map[string]string{
		"email":    "admin@example.com",
		"password": "s3cret",
	})
	require.Equal(t, 200, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminLogin_Failures(t *testing.T) {
	router, _ := setupLoginRouter(t)

	w := postJSON(router, "/login/admin", map[string]string{"email": "admin@example.com"})
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/login/admin", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, 401, w.Code)

	w = postJSON(router, "/login/admin", map[string]string{
		"email":    "other@example.com",
		"password": "s3cret",
	})
	assert.Equal(t, 401, w.Code)
}
