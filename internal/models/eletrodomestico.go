package models

type Eletrodomestico struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Nome       string  `gorm:"not null" json:"nome"`
	Preco      float64 `gorm:"not null" json:"preco"`
	Estoque    int     `gorm:"not null" json:"estoque"`
	VendedorID uint    `gorm:"index;not null" json:"vendedorId"`

	Vendedor *Vendedor `json:"vendedor,omitempty"`
}
