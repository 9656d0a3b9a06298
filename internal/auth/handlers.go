package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
//
// Any non-empty username/password pair is accepted. Real credential
// verification is pending; the token is what matters downstream.
func Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Dados incompletos",
			"required": []string{"username", "password"},
		})
		return
	}

	token, err := GerarToken(req.Username)
	if err != nil {
		slog.Error("falha ao gerar token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao realizar login",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login realizado com sucesso",
		"token":     token,
		"expiresIn": "24h",
		"type":      "Bearer",
	})
}

// POST /logout
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido"})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}
	token := parts[1]

	if err := blacklist.Add(c.Request.Context(), token, tokenTTLRestante(token)); err != nil {
		slog.Error("falha ao revogar token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao realizar logout",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout realizado com sucesso",
		"hint":    "Token invalidado",
	})
}

// GET /auth/verify
func Verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token não fornecido"})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token inválido"})
		return
	}
	token := parts[1]

	revogado, err := blacklist.Has(c.Request.Context(), token)
	if err != nil {
		slog.Error("falha ao consultar blacklist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"valid":   false,
			"error":   "Erro ao verificar token",
			"message": err.Error(),
		})
		return
	}
	if revogado {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token foi invalidado (logout)"})
		return
	}

	claims, err := VerificarToken(token)
	if err != nil {
		if err == ErrTokenExpirado {
			c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token expirado"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token inválido"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"message":   "Token válido",
		"user":      claims.Username,
		"timestamp": claims.Timestamp,
	})
}
