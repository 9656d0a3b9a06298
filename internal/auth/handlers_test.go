package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	SetBlacklist(NewMemoryBlacklist())
	t.Cleanup(func() { SetBlacklist(NewMemoryBlacklist()) })

	r := gin.New()
	r.POST("/login", Login)
	r.POST("/logout", Logout)
	r.GET("/auth/verify", Verify)

	// A throwaway mutating route to exercise the gate the way entity
	// routes use it.
	r.POST("/protegido", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user")})
	})

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, header string) *httptest.ResponseRecorder {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func loginToken(t *testing.T, r *gin.Engine) string {
	recorder := doJSON(r, http.MethodPost, "/login", gin.H{"username": "maria", "password": "segredo"}, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginHandler(t *testing.T) {
	router := setupAuthRouter(t)

	t.Run("returns a bearer token for any credentials", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/login", gin.H{"username": "maria", "password": "x"}, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Login realizado com sucesso", resp["message"])
		assert.Equal(t, "24h", resp["expiresIn"])
		assert.Equal(t, "Bearer", resp["type"])
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("empty body returns 400 with the required fields", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/login", gin.H{}, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Dados incompletos", resp["error"])
		assert.ElementsMatch(t, []interface{}{"username", "password"}, resp["required"])
	})

	t.Run("missing password returns 400", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/login", gin.H{"username": "maria"}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	router := setupAuthRouter(t)

	t.Run("revokes the presented token", func(t *testing.T) {
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodPost, "/logout", nil, "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Logout realizado com sucesso", resp["message"])

		// The revoked token no longer verifies nor passes the gate.
		recorder = doJSON(router, http.MethodGet, "/auth/verify", nil, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["valid"])
		assert.Equal(t, "Token foi invalidado (logout)", resp["error"])

		recorder = doJSON(router, http.MethodPost, "/protegido", nil, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("logout is idempotent", func(t *testing.T) {
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodPost, "/logout", nil, "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		recorder = doJSON(router, http.MethodPost, "/logout", nil, "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/logout", nil, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token não fornecido", resp["error"])
	})
}

func TestVerifyHandler(t *testing.T) {
	router := setupAuthRouter(t)

	t.Run("valid token reports identity and timestamp", func(t *testing.T) {
		antes := time.Now().UnixMilli()
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodGet, "/auth/verify", nil, "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["valid"])
		assert.Equal(t, "maria", resp["user"])
		assert.GreaterOrEqual(t, int64(resp["timestamp"].(float64)), antes)
	})

	t.Run("expired token returns 401 with its own message", func(t *testing.T) {
		token := assinarExpirado(t, "maria", time.Hour)

		recorder := doJSON(router, http.MethodGet, "/auth/verify", nil, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token expirado", resp["error"])
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		recorder := doJSON(router, http.MethodGet, "/auth/verify", nil, "Bearer lixo")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	router := setupAuthRouter(t)

	t.Run("admits a valid token and exposes the user", func(t *testing.T) {
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "maria", resp["user"])
	})

	t.Run("scheme comparison is case-insensitive", func(t *testing.T) {
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Acesso negado", resp["error"])
	})

	t.Run("header without the token part", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Bearer")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token mal formatado", resp["error"])
	})

	t.Run("header with too many parts", func(t *testing.T) {
		token := loginToken(t, router)
		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Bearer "+token+" extra")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		token := loginToken(t, router)
		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Basic "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token mal formatado", resp["error"])
	})

	t.Run("expired token gets its own message", func(t *testing.T) {
		token := assinarExpirado(t, "maria", time.Hour)

		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token expirado", resp["error"])
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token := loginToken(t, router)

		recorder := doJSON(router, http.MethodPost, "/protegido", nil, "Bearer "+token+"x")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Token inválido", resp["error"])
	})
}
