package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
)

type CreateVendedorRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type UpdateVendedorRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
}

func (r CreateVendedorRequest) validar() []string {
	var errs []string

	if msg := validarNome(r.Nome, 3); msg != "" {
		errs = append(errs, msg)
	}

	if r.Email == "" {
		errs = append(errs, "Email é obrigatório e deve ser uma string")
	} else if !emailRegex.MatchString(r.Email) {
		errs = append(errs, "Email deve ser um endereço válido")
	}

	return errs
}

func (r UpdateVendedorRequest) validar() []string {
	var errs []string

	if r.Nome != nil {
		if strings.TrimSpace(*r.Nome) == "" {
			errs = append(errs, "Nome deve ser uma string não vazia")
		} else if msg := validarNome(*r.Nome, 3); msg != "" {
			errs = append(errs, msg)
		}
	}

	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		errs = append(errs, "Email deve ser um endereço válido")
	}

	return errs
}

// GET /vendedores
func GetVendedores(c *gin.Context) {
	var vendedores []models.Vendedor
	if err := db.DB.Preload("Eletrodomesticos").Find(&vendedores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar vendedores",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, vendedores)
}

// GET /vendedores/:id
func GetVendedorByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var vendedor models.Vendedor
	err := db.DB.
		Preload("Eletrodomesticos").
		Preload("Carrinhos.Cliente").
		Preload("Carrinhos.Itens").
		First(&vendedor, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	c.JSON(http.StatusOK, vendedor)
}

// POST /vendedores
func CreateVendedor(c *gin.Context) {
	var req CreateVendedorRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	vendedor := models.Vendedor{
		Nome:  strings.TrimSpace(req.Nome),
		Email: req.Email,
	}

	if err := db.DB.Create(&vendedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao criar vendedor",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, vendedor)
}

// PUT /vendedores/:id
func UpdateVendedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateVendedorRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var vendedor models.Vendedor
	if err := db.DB.First(&vendedor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	if req.Nome != nil {
		vendedor.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Email != nil {
		vendedor.Email = *req.Email
	}

	if err := db.DB.Save(&vendedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao atualizar vendedor",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, vendedor)
}

// DELETE /vendedores/:id
func DeleteVendedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var vendedor models.Vendedor
	if err := db.DB.First(&vendedor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	if err := db.DB.Delete(&vendedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao deletar vendedor",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendedor deletado com sucesso"})
}

// GET /vendedores/:id/eletrodomesticos
func GetEletrodomesticosByVendedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var vendedor models.Vendedor
	if err := db.DB.First(&vendedor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	var eletros []models.Eletrodomestico
	if err := db.DB.Where("vendedor_id = ?", id).Find(&eletros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar eletrodomésticos do vendedor",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, eletros)
}
