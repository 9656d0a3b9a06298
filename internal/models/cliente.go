package models

type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"not null" json:"nome"`
	CPF      string `gorm:"uniqueIndex;not null;size:11" json:"cpf"`
	Email    string `gorm:"not null" json:"email"`
	Telefone string `gorm:"not null" json:"telefone"`

	Carrinhos []Carrinho `gorm:"foreignKey:ClienteID" json:"carrinhos,omitempty"`
}
