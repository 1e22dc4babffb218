package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// Somente leitura: as vendas são criadas pelo fluxo de checkout,
// nunca por aqui.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository cria uma nova instância do repositório
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// ListByWorkerBetween devolve as vendas do funcionário em [from, to),
// na ordem em que foram registradas.
func (r *SalePostgresRepository) ListByWorkerBetween(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]entity.Sale, error) {
	// Intervalo [from, to) para aproveitar o índice em criado_em
	query := `
		SELECT id, funcionario_id, total, forma_pagamento, sub_forma_pagamento, criado_em
		FROM vendas
		WHERE funcionario_id = $1
			AND criado_em >= $2
			AND criado_em < $3
		ORDER BY criado_em ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	for rows.Next() {
		var sale entity.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.WorkerID,
			&sale.Total,
			&sale.PaymentMethod,
			&sale.PaymentSubMethod,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return sales, nil
}
