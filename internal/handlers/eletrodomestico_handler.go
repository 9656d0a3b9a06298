package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
)

const precoMaximo = 999999.99

type CreateEletrodomesticoRequest struct {
	Nome       string   `json:"nome"`
	Preco      *float64 `json:"preco"`
	Estoque    *int     `json:"estoque"`
	VendedorID *uint    `json:"vendedorId"`
}

type UpdateEletrodomesticoRequest struct {
	Nome       *string  `json:"nome"`
	Preco      *float64 `json:"preco"`
	Estoque    *int     `json:"estoque"`
	VendedorID *uint    `json:"vendedorId"`
}

func (r CreateEletrodomesticoRequest) validar() []string {
	var errs []string

	if msg := validarNome(r.Nome, 2); msg != "" {
		errs = append(errs, msg)
	}

	switch {
	case r.Preco == nil:
		errs = append(errs, "Preço é obrigatório")
	case *r.Preco <= 0:
		errs = append(errs, "Preço deve ser maior que zero")
	case *r.Preco > precoMaximo:
		errs = append(errs, "Preço não pode exceder 999999.99")
	}

	switch {
	case r.Estoque == nil:
		errs = append(errs, "Estoque é obrigatório")
	case *r.Estoque < 0:
		errs = append(errs, "Estoque não pode ser negativo")
	}

	switch {
	case r.VendedorID == nil:
		errs = append(errs, "ID do vendedor é obrigatório")
	case *r.VendedorID == 0:
		errs = append(errs, "ID do vendedor deve ser maior que zero")
	}

	return errs
}

func (r UpdateEletrodomesticoRequest) validar() []string {
	var errs []string

	if r.Nome != nil {
		if strings.TrimSpace(*r.Nome) == "" {
			errs = append(errs, "Nome deve ser uma string não vazia")
		} else if msg := validarNome(*r.Nome, 2); msg != "" {
			errs = append(errs, msg)
		}
	}

	if r.Preco != nil {
		if *r.Preco <= 0 {
			errs = append(errs, "Preço deve ser maior que zero")
		} else if *r.Preco > precoMaximo {
			errs = append(errs, "Preço não pode exceder 999999.99")
		}
	}

	if r.Estoque != nil && *r.Estoque < 0 {
		errs = append(errs, "Estoque não pode ser negativo")
	}

	if r.VendedorID != nil && *r.VendedorID == 0 {
		errs = append(errs, "ID do vendedor deve ser maior que zero")
	}

	return errs
}

// GET /eletrodomesticos
func GetEletrodomesticos(c *gin.Context) {
	var eletros []models.Eletrodomestico
	if err := db.DB.Preload("Vendedor").Find(&eletros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar eletrodomésticos",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, eletros)
}

// GET /eletrodomesticos/:id
func GetEletrodomesticoByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var eletro models.Eletrodomestico
	if err := db.DB.Preload("Vendedor").First(&eletro, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eletrodoméstico não encontrado"})
		return
	}

	c.JSON(http.StatusOK, eletro)
}

// POST /eletrodomesticos
func CreateEletrodomestico(c *gin.Context) {
	var req CreateEletrodomesticoRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var vendedor models.Vendedor
	if err := db.DB.First(&vendedor, *req.VendedorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
		return
	}

	eletro := models.Eletrodomestico{
		Nome:       strings.TrimSpace(req.Nome),
		Preco:      *req.Preco,
		Estoque:    *req.Estoque,
		VendedorID: *req.VendedorID,
	}

	if err := db.DB.Create(&eletro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao criar eletrodoméstico",
			"message": err.Error(),
		})
		return
	}

	if err := db.DB.Preload("Vendedor").First(&eletro, eletro.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao buscar eletrodoméstico criado",
		})
		return
	}

	c.JSON(http.StatusCreated, eletro)
}

// PUT /eletrodomesticos/:id
func UpdateEletrodomestico(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateEletrodomesticoRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var eletro models.Eletrodomestico
	if err := db.DB.First(&eletro, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eletrodoméstico não encontrado"})
		return
	}

	if req.VendedorID != nil && *req.VendedorID != eletro.VendedorID {
		var vendedor models.Vendedor
		if err := db.DB.First(&vendedor, *req.VendedorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendedor não encontrado"})
			return
		}
		eletro.VendedorID = *req.VendedorID
	}
	if req.Nome != nil {
		eletro.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Preco != nil {
		eletro.Preco = *req.Preco
	}
	if req.Estoque != nil {
		eletro.Estoque = *req.Estoque
	}

	if err := db.DB.Save(&eletro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao atualizar eletrodoméstico",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, eletro)
}

// DELETE /eletrodomesticos/:id
func DeleteEletrodomestico(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var eletro models.Eletrodomestico
	if err := db.DB.First(&eletro, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eletrodoméstico não encontrado"})
		return
	}

	if err := db.DB.Delete(&eletro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao deletar eletrodoméstico",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Eletrodoméstico deletado com sucesso"})
}
