package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
)

type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type UpdateClienteRequest struct {
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

func (r CreateClienteRequest) validar() []string {
	var errs []string

	if msg := validarNome(r.Nome, 3); msg != "" {
		errs = append(errs, msg)
	}

	if r.CPF == "" {
		errs = append(errs, "CPF é obrigatório e deve ser uma string")
	} else if len(somenteDigitos(r.CPF)) != 11 {
		errs = append(errs, "CPF deve conter 11 dígitos")
	}

	if r.Email == "" {
		errs = append(errs, "Email é obrigatório e deve ser uma string")
	} else if !emailRegex.MatchString(r.Email) {
		errs = append(errs, "Email deve ser um endereço válido")
	}

	if r.Telefone == "" {
		errs = append(errs, "Telefone é obrigatório e deve ser uma string")
	} else if n := len(somenteDigitos(r.Telefone)); n < 10 || n > 11 {
		errs = append(errs, "Telefone deve conter 10 ou 11 dígitos")
	}

	return errs
}

func (r UpdateClienteRequest) validar() []string {
	var errs []string

	if r.Nome != nil {
		if strings.TrimSpace(*r.Nome) == "" {
			errs = append(errs, "Nome deve ser uma string não vazia")
		} else if msg := validarNome(*r.Nome, 3); msg != "" {
			errs = append(errs, msg)
		}
	}

	if r.CPF != nil && len(somenteDigitos(*r.CPF)) != 11 {
		errs = append(errs, "CPF deve conter 11 dígitos")
	}

	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		errs = append(errs, "Email deve ser um endereço válido")
	}

	if r.Telefone != nil {
		if n := len(somenteDigitos(*r.Telefone)); n < 10 || n > 11 {
			errs = append(errs, "Telefone deve conter 10 ou 11 dígitos")
		}
	}

	return errs
}

// GET /clientes
func GetClientes(c *gin.Context) {
	var clientes []models.Cliente
	if err := db.DB.Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar clientes",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GET /clientes/:id
func GetClienteByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := db.DB.Preload("Carrinhos.Itens.Eletrodomestico").First(&cliente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// POST /clientes
func CreateCliente(c *gin.Context) {
	var req CreateClienteRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	cpf := somenteDigitos(req.CPF)

	var existente models.Cliente
	if err := db.DB.Where("cpf = ?", cpf).First(&existente).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "CPF já cadastrado"})
		return
	}

	cliente := models.Cliente{
		Nome:     strings.TrimSpace(req.Nome),
		CPF:      cpf,
		Email:    req.Email,
		Telefone: req.Telefone,
	}

	if err := db.DB.Create(&cliente).Error; err != nil {
		// Unique index backstop for concurrent creates with the same CPF.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "CPF já cadastrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao criar cliente",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

// PUT /clientes/:id
func UpdateCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateClienteRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var cliente models.Cliente
	if err := db.DB.First(&cliente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	if req.CPF != nil {
		cpf := somenteDigitos(*req.CPF)
		if cpf != cliente.CPF {
			var emUso models.Cliente
			if err := db.DB.Where("cpf = ?", cpf).First(&emUso).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "CPF já cadastrado"})
				return
			}
		}
		cliente.CPF = cpf
	}
	if req.Nome != nil {
		cliente.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}

	if err := db.DB.Save(&cliente).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "CPF já cadastrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao atualizar cliente",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// DELETE /clientes/:id
func DeleteCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := db.DB.First(&cliente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	if err := db.DB.Delete(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao deletar cliente",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente deletado com sucesso"})
}

// GET /clientes/:id/carrinhos
func GetCarrinhosByCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := db.DB.First(&cliente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	var carrinhos []models.Carrinho
	err := db.DB.
		Preload("Vendedor").
		Preload("Itens.Eletrodomestico").
		Where("cliente_id = ?", id).
		Find(&carrinhos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar carrinhos do cliente",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, carrinhos)
}
