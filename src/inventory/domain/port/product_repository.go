package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/entity"
)

// ErrProductNotFound código de barras sem produto correspondente
var ErrProductNotFound = errors.New("produto não encontrado")

// ProductRepository persiste produtos e o ledger de movimentações.
type ProductRepository interface {
	// FindByBarcode localiza um produto pelo código de barras.
	// Devolve ErrProductNotFound quando não existe.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// RegisterSale dá baixa no estoque do produto e grava a
	// movimentação correspondente como um passo lógico único
	// (mesma transação).
	RegisterSale(ctx context.Context, product *entity.Product, quantity decimal.Decimal, source string) error

	// ListMovements devolve as movimentações mais recentes do produto.
	ListMovements(ctx context.Context, barcode string, limit int) ([]entity.StockMovement, error)
}
