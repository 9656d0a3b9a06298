package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
	"github.com/Davi-Bueno/api-vendas/internal/utils"
)

type CreateCarrinhoRequest struct {
	ClienteID  *uint `json:"clienteId"`
	VendedorID *uint `json:"vendedorId"`
}

type UpdateCarrinhoRequest struct {
	ClienteID  *uint `json:"clienteId"`
	VendedorID *uint `json:"vendedorId"`
}

func (r CreateCarrinhoRequest) validar() []string {
	var errs []string

	switch {
	case r.ClienteID == nil:
		errs = append(errs, "ID do cliente é obrigatório")
	case *r.ClienteID == 0:
		errs = append(errs, "ID do cliente deve ser maior que zero")
	}

	switch {
	case r.VendedorID == nil:
		errs = append(errs, "ID do vendedor é obrigatório")
	case *r.VendedorID == 0:
		errs = append(errs, "ID do vendedor deve ser maior que zero")
	}

	return errs
}

func (r UpdateCarrinhoRequest) validar() []string {
	var errs []string

	if r.ClienteID != nil && *r.ClienteID == 0 {
		errs = append(errs, "ID do cliente deve ser maior que zero")
	}
	if r.VendedorID != nil && *r.VendedorID == 0 {
		errs = append(errs, "ID do vendedor deve ser maior que zero")
	}

	return errs
}

// GET /carrinhos
func GetCarrinhos(c *gin.Context) {
	var carrinhos []models.Carrinho
	err := db.DB.
		Preload("Cliente").
		Preload("Vendedor").
		Preload("Itens.Eletrodomestico").
		Find(&carrinhos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar carrinhos",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, carrinhos)
}

// GET /carrinhos/:id
func GetCarrinhoByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var carrinho models.Carrinho
	err := db.DB.
		Preload("Cliente").
		Preload("Vendedor").
		Preload("Itens.Eletrodomestico").
		First(&carrinho, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	c.JSON(http.StatusOK, carrinho)
}

// POST /carrinhos
//
// Both references are validated up front so a missing entity yields a clean
// 404 instead of a foreign-key failure from the store.
func CreateCarrinho(c *gin.Context) {
	var req CreateCarrinhoRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var cliente models.Cliente
	if err := db.DB.First(&cliente, *req.ClienteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	var vendedor models.Vendedor
	if err := db.DB.First(&vendedor, *req.VendedorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	carrinho := models.Carrinho{
		DataCriacao: time.Now(),
		ClienteID:   *req.ClienteID,
		VendedorID:  *req.VendedorID,
	}

	if err := db.DB.Create(&carrinho).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao criar carrinho",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, carrinho)
}

// PUT /carrinhos/:id
func UpdateCarrinho(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCarrinhoRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.First(&carrinho, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	// Reference changes are re-validated before being applied.
	if req.ClienteID != nil {
		var cliente models.Cliente
		if err := db.DB.First(&cliente, *req.ClienteID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		carrinho.ClienteID = *req.ClienteID
	}
	if req.VendedorID != nil {
		var vendedor models.Vendedor
		if err := db.DB.First(&vendedor, *req.VendedorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
			return
		}
		carrinho.VendedorID = *req.VendedorID
	}

	if err := db.DB.Save(&carrinho).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao atualizar carrinho",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, carrinho)
}

// DELETE /carrinhos/:id
func DeleteCarrinho(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.First(&carrinho, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	if err := db.DB.Delete(&carrinho).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao deletar carrinho",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Carrinho deletado com sucesso"})
}

// GET /carrinhos/:id/total
func GetCarrinhoTotal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var carrinho models.Carrinho
	err := db.DB.
		Preload("Cliente").
		Preload("Vendedor").
		First(&carrinho, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	total, itens, err := utils.CalcularTotal(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao calcular total do carrinho",
			"message": err.Error(),
		})
		return
	}
	carrinho.Itens = itens

	c.JSON(http.StatusOK, gin.H{
		"carrinho": carrinho,
		"total":    total.InexactFloat64(),
	})
}
