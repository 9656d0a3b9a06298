package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var naoDigito = regexp.MustCompile(`\D`)

// somenteDigitos strips formatting from CPF and phone values before the
// digit-count checks.
func somenteDigitos(s string) string {
	return naoDigito.ReplaceAllString(s, "")
}

func validarNome(nome string, min int) string {
	n := strings.TrimSpace(nome)
	switch {
	case n == "":
		return "Nome é obrigatório e deve ser uma string não vazia"
	case len(n) < min:
		return "Nome deve ter pelo menos " + strconv.Itoa(min) + " caracteres"
	case len(n) > 100:
		return "Nome deve ter no máximo 100 caracteres"
	}
	return ""
}

// bindJSON decodes the request body, replying 400 on malformed JSON.
// Callers must return when it reports false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "JSON inválido",
			"message": err.Error(),
		})
		return false
	}
	return true
}

func respondInvalid(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Dados inválidos",
		"details": details,
	})
}
