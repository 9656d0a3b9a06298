package models

type Vendedor struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"not null" json:"nome"`
	Email string `gorm:"not null" json:"email"`

	Eletrodomesticos []Eletrodomestico `gorm:"foreignKey:VendedorID" json:"eletrodomesticos,omitempty"`
	Carrinhos        []Carrinho        `gorm:"foreignKey:VendedorID" json:"carrinhos,omitempty"`
}
