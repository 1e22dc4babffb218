package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeOut = "saida"
	MovementTypeIn  = "entrada"
)

// StockMovement lançamento no ledger de movimentações de estoque.
// Append-only: cada baixa ou entrada gera exatamente um lançamento.
type StockMovement struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"produto_id"`
	Type      string          `json:"tipo"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Source    string          `json:"origem"` // ex.: "linx", "checkout"
	CreatedAt time.Time       `json:"criado_em"`
}
