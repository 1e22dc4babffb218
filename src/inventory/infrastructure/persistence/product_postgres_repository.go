package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/port"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL.
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository cria uma nova instância do repositório
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// FindByBarcode localiza um produto pelo código de barras.
func (r *ProductPostgresRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `
		SELECT id, codigo_barras, nome, preco, quantidade, criado_em
		FROM produtos
		WHERE codigo_barras = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, barcode).Scan(
		&product.ID,
		&product.Barcode,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, port.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}
	return product, nil
}

// RegisterSale dá baixa no estoque e grava a movimentação na mesma
// transação: ou os dois efeitos acontecem, ou nenhum.
func (r *ProductPostgresRepository) RegisterSale(ctx context.Context, product *entity.Product, quantity decimal.Decimal, source string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Baixa de estoque
	queryStock := `
		UPDATE produtos
		SET quantidade = quantidade - $2
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, queryStock, product.ID, quantity)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	// 2. Lançamento no ledger de movimentações
	queryMovement := `
		INSERT INTO movimentacoes_estoque (id, produto_id, tipo, quantidade, origem, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, queryMovement,
		uuid.New(),
		product.ID,
		entity.MovementTypeOut,
		quantity,
		source,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error creating stock movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// ListMovements devolve as movimentações mais recentes de um produto.
func (r *ProductPostgresRepository) ListMovements(ctx context.Context, barcode string, limit int) ([]entity.StockMovement, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo, m.quantidade, m.origem, m.criado_em
		FROM movimentacoes_estoque m
		JOIN produtos p ON p.id = m.produto_id
		WHERE p.codigo_barras = $1
		ORDER BY m.criado_em DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, barcode, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Source, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning movement: %w", err)
		}
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movements: %w", err)
	}
	return movements, nil
}
