package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates every mutating route. Admission requires a well-formed
// Bearer header carrying a token that is neither revoked, expired nor
// forged; the decoded username is placed on the context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Acesso negado",
				"message": "Token não fornecido",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":  "Token mal formatado",
				"format": "Bearer TOKEN",
			})
			return
		}

		scheme, token := parts[0], parts[1]
		if !strings.EqualFold(scheme, "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Token mal formatado",
				"expected": "Bearer TOKEN",
			})
			return
		}

		revogado, err := blacklist.Has(c.Request.Context(), token)
		if err != nil {
			slog.Error("falha ao consultar blacklist", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Erro na autenticação",
				"message": err.Error(),
			})
			return
		}
		if revogado {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Token invalidado",
				"message": "Este token foi revogado (logout realizado)",
			})
			return
		}

		claims, err := VerificarToken(token)
		if err != nil {
			if err == ErrTokenExpirado {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "Token expirado",
					"message": "Faça login novamente",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Token inválido",
				"message": "Token corrompido ou assinatura inválida",
			})
			return
		}

		c.Set("user", claims.Username)
		c.Set("token", token)
		c.Next()
	}
}
