package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product produto do catálogo local, localizado pelo código de barras.
// Quantidade em decimal: combustível vende fração de litro.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Barcode   string          `json:"codigo_barras"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	Quantity  decimal.Decimal `json:"quantidade"`
	CreatedAt time.Time       `json:"criado_em"`
}
