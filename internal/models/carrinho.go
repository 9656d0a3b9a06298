package models

import "time"

type Carrinho struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DataCriacao time.Time `gorm:"not null" json:"dataCriacao"`
	ClienteID   uint      `gorm:"index;not null" json:"clienteId"`
	VendedorID  uint      `gorm:"index;not null" json:"vendedorId"`

	Cliente  *Cliente         `json:"cliente,omitempty"`
	Vendedor *Vendedor        `json:"vendedor,omitempty"`
	Itens    []CarrinhoEletro `gorm:"foreignKey:CarrinhoID" json:"itens,omitempty"`
}

// CarrinhoEletro is a cart line item. The composite primary key makes
// (carrinho, eletrodoméstico) unique at the store level, so a product can
// appear in a cart at most once.
type CarrinhoEletro struct {
	CarrinhoID        uint `gorm:"primaryKey;autoIncrement:false" json:"carrinhoId"`
	EletrodomesticoID uint `gorm:"primaryKey;autoIncrement:false" json:"eletrodomesticoId"`
	Quantidade        int  `gorm:"not null" json:"quantidade"`

	Carrinho        *Carrinho        `json:"carrinho,omitempty"`
	Eletrodomestico *Eletrodomestico `json:"eletrodomestico,omitempty"`
}
