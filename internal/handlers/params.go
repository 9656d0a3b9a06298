package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter, replying 400 on failure.
// Callers must return when ok is false.
func parseID(c *gin.Context, name string) (uint, bool) {
	valor, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || valor == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "ID inválido",
			"message": "O ID deve ser um número inteiro positivo",
		})
		return 0, false
	}
	return uint(valor), true
}

// parseCompositeID validates the (carrinhoId, eletrodomesticoId) pair used
// by cart-item routes, collecting both failures before replying.
func parseCompositeID(c *gin.Context) (uint, uint, bool) {
	var errors []string

	carrinhoID, err := strconv.ParseUint(c.Param("carrinhoId"), 10, 32)
	if err != nil || carrinhoID == 0 {
		errors = append(errors, "ID do carrinho deve ser um número inteiro positivo")
	}

	eletroID, err := strconv.ParseUint(c.Param("eletrodomesticoId"), 10, 32)
	if err != nil || eletroID == 0 {
		errors = append(errors, "ID do eletrodoméstico deve ser um número inteiro positivo")
	}

	if len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "IDs inválidos",
			"details": errors,
		})
		return 0, 0, false
	}

	return uint(carrinhoID), uint(eletroID), true
}
