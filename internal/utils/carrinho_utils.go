package utils

import (
	"github.com/shopspring/decimal"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
)

// CalcularTotal sums quantidade × current price over a cart's items.
// Accumulation happens in decimal so currency values never pick up binary
// float drift; prices are read live, not from a snapshot.
func CalcularTotal(carrinhoID uint) (decimal.Decimal, []models.CarrinhoEletro, error) {
	var itens []models.CarrinhoEletro
	err := db.DB.
		Preload("Eletrodomestico").
		Where("carrinho_id = ?", carrinhoID).
		Find(&itens).Error
	if err != nil {
		return decimal.Zero, nil, err
	}

	total := decimal.Zero
	for _, item := range itens {
		if item.Eletrodomestico == nil {
			continue
		}
		preco := decimal.NewFromFloat(item.Eletrodomestico.Preco)
		total = total.Add(preco.Mul(decimal.NewFromInt(int64(item.Quantidade))))
	}

	return total, itens, nil
}
