package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	config "github.com/Davi-Bueno/api-vendas/configs"
	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
	"github.com/Davi-Bueno/api-vendas/internal/notifier"
	"github.com/Davi-Bueno/api-vendas/internal/utils"
)

const quantidadeMaxima = 1000

type CreateCarrinhoEletroRequest struct {
	CarrinhoID        *uint `json:"carrinhoId"`
	EletrodomesticoID *uint `json:"eletrodomesticoId"`
	Quantidade        *int  `json:"quantidade"`
}

type UpdateCarrinhoEletroRequest struct {
	Quantidade *int `json:"quantidade"`
}

func (r CreateCarrinhoEletroRequest) validar() []string {
	var errs []string

	switch {
	case r.CarrinhoID == nil:
		errs = append(errs, "ID do carrinho é obrigatório")
	case *r.CarrinhoID == 0:
		errs = append(errs, "ID do carrinho deve ser maior que zero")
	}

	switch {
	case r.EletrodomesticoID == nil:
		errs = append(errs, "ID do eletrodoméstico é obrigatório")
	case *r.EletrodomesticoID == 0:
		errs = append(errs, "ID do eletrodoméstico deve ser maior que zero")
	}

	errs = append(errs, validarQuantidade(r.Quantidade)...)

	return errs
}

func (r UpdateCarrinhoEletroRequest) validar() []string {
	return validarQuantidade(r.Quantidade)
}

func validarQuantidade(quantidade *int) []string {
	switch {
	case quantidade == nil:
		return []string{"Quantidade é obrigatória"}
	case *quantidade <= 0:
		return []string{"Quantidade deve ser maior que zero"}
	case *quantidade > quantidadeMaxima:
		return []string{"Quantidade não pode exceder 1000 unidades"}
	}
	return nil
}

// GET /carrinho-eletro
func GetCarrinhoEletros(c *gin.Context) {
	var itens []models.CarrinhoEletro
	err := db.DB.
		Preload("Carrinho").
		Preload("Eletrodomestico").
		Find(&itens).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar itens",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, itens)
}

// GET /carrinho-eletro/:carrinhoId/:eletrodomesticoId
func GetCarrinhoEletroByID(c *gin.Context) {
	carrinhoID, eletroID, ok := parseCompositeID(c)
	if !ok {
		return
	}

	item, err := buscarItem(db.DB, carrinhoID, eletroID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado no carrinho"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// GET /carrinhos/:id/itens
func GetItensByCarrinho(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.First(&carrinho, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	var itens []models.CarrinhoEletro
	err := db.DB.
		Preload("Eletrodomestico").
		Where("carrinho_id = ?", id).
		Find(&itens).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao buscar itens do carrinho",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, itens)
}

// POST /carrinho-eletro
//
// The existence check and the insert run inside one transaction, with the
// composite primary key as the constraint backstop, so two concurrent adds
// of the same (carrinho, eletrodoméstico) pair cannot both land.
func CreateCarrinhoEletro(c *gin.Context) {
	var req CreateCarrinhoEletroRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.First(&carrinho, *req.CarrinhoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	var eletro models.Eletrodomestico
	if err := db.DB.First(&eletro, *req.EletrodomesticoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Eletrodoméstico não encontrado"})
		return
	}

	item := models.CarrinhoEletro{
		CarrinhoID:        *req.CarrinhoID,
		EletrodomesticoID: *req.EletrodomesticoID,
		Quantidade:        *req.Quantidade,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := buscarItem(tx, item.CarrinhoID, item.EletrodomesticoID); err == nil {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item já existe no carrinho",
				"hint":  "Use PUT para atualizar a quantidade",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao adicionar item ao carrinho",
			"message": err.Error(),
		})
		return
	}

	criado, err := buscarItem(db.DB, item.CarrinhoID, item.EletrodomesticoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erro ao buscar item criado",
		})
		return
	}

	notificarCliente(item.CarrinhoID)

	c.JSON(http.StatusCreated, criado)
}

// PUT /carrinho-eletro/:carrinhoId/:eletrodomesticoId
func UpdateCarrinhoEletro(c *gin.Context) {
	carrinhoID, eletroID, ok := parseCompositeID(c)
	if !ok {
		return
	}

	var req UpdateCarrinhoEletroRequest
	if !bindJSON(c, &req) {
		return
	}

	if errs := req.validar(); len(errs) > 0 {
		respondInvalid(c, errs)
		return
	}

	item, err := buscarItem(db.DB, carrinhoID, eletroID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado no carrinho"})
		return
	}

	// Quantity is replaced in place; no history kept.
	item.Quantidade = *req.Quantidade
	err = db.DB.
		Model(&models.CarrinhoEletro{}).
		Where("carrinho_id = ? AND eletrodomestico_id = ?", carrinhoID, eletroID).
		Update("quantidade", *req.Quantidade).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao atualizar item",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /carrinho-eletro/:carrinhoId/:eletrodomesticoId
func DeleteCarrinhoEletro(c *gin.Context) {
	carrinhoID, eletroID, ok := parseCompositeID(c)
	if !ok {
		return
	}

	if _, err := buscarItem(db.DB, carrinhoID, eletroID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado no carrinho"})
		return
	}

	err := db.DB.
		Where("carrinho_id = ? AND eletrodomestico_id = ?", carrinhoID, eletroID).
		Delete(&models.CarrinhoEletro{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao remover item",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removido do carrinho com sucesso"})
}

// DELETE /carrinhos/:id/itens
//
// Clearing an empty cart succeeds; a missing cart still 404s.
func ClearCarrinho(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.First(&carrinho, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrinho não encontrado"})
		return
	}

	err := db.DB.
		Where("carrinho_id = ?", id).
		Delete(&models.CarrinhoEletro{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao limpar carrinho",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itens removidos do carrinho com sucesso"})
}

func buscarItem(tx *gorm.DB, carrinhoID, eletroID uint) (*models.CarrinhoEletro, error) {
	var item models.CarrinhoEletro
	err := tx.
		Preload("Carrinho").
		Preload("Eletrodomestico").
		Where("carrinho_id = ? AND eletrodomestico_id = ?", carrinhoID, eletroID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// notificarCliente tells the cart's owner about the updated total, on the
// channels this deployment has configured. Fire-and-forget, like the rest
// of the request must not wait on third-party APIs.
func notificarCliente(carrinhoID uint) {
	smsCfg := config.LoadAfricaTalkingConfig()
	emailCfg := config.LoadEmailConfig()
	if !smsCfg.Enabled() && !emailCfg.Enabled() {
		return
	}

	var carrinho models.Carrinho
	if err := db.DB.Preload("Cliente").First(&carrinho, carrinhoID).Error; err != nil {
		slog.Error("falha ao carregar carrinho para notificação", "carrinho_id", carrinhoID, "error", err)
		return
	}
	if carrinho.Cliente == nil {
		return
	}

	total, _, err := utils.CalcularTotal(carrinhoID)
	if err != nil {
		slog.Error("falha ao calcular total para notificação", "carrinho_id", carrinhoID, "error", err)
		return
	}

	cliente := *carrinho.Cliente
	valor := total.InexactFloat64()

	if smsCfg.Enabled() {
		go func() {
			if err := notifier.SendSMS(cliente.Telefone, carrinhoID, valor); err != nil {
				slog.Error("falha ao enviar SMS", "carrinho_id", carrinhoID, "error", err)
			}
		}()
	}

	if emailCfg.Enabled() {
		go func() {
			if err := notifier.SendEmail(cliente.Email, cliente.Nome, carrinhoID, valor); err != nil {
				slog.Error("falha ao enviar e-mail", "carrinho_id", carrinhoID, "error", err)
			}
		}()
	}
}
