package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
)

// ClosurePostgresRepository implementa ClosureRepository usando
// PostgreSQL. Só insert e select: fechamento nunca sofre update.
type ClosurePostgresRepository struct {
	db *sql.DB
}

// NewClosurePostgresRepository cria uma nova instância do repositório
func NewClosurePostgresRepository(db *sql.DB) port.ClosureRepository {
	return &ClosurePostgresRepository{
		db: db,
	}
}

// Create insere o snapshot de fechamento.
func (r *ClosurePostgresRepository) Create(ctx context.Context, closure *entity.ShiftClosure) error {
	breakdown, err := json.Marshal(closure.Breakdown)
	if err != nil {
		return fmt.Errorf("error marshaling breakdown: %w", err)
	}

	query := `
		INSERT INTO fechamentos_turno (
			id, turno_id, funcionario_id, aberto_em, fechado_em,
			total_vendas, valor_total, ticket_medio,
			valor_entrada, valor_saida, sobra_falta,
			formas_pagamento, relatorio, criado_em
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		closure.ID,
		closure.ShiftID,
		closure.WorkerID,
		closure.OpenedAt,
		closure.ClosedAt,
		closure.TotalSales,
		closure.TotalAmount,
		closure.AverageTicket,
		closure.EntryTotal,
		closure.ExitTotal,
		closure.CashDiff,
		breakdown,
		[]byte(closure.Report),
		closure.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating shift closure: %w", err)
	}
	return nil
}

// ListByWorker devolve os fechamentos mais recentes do funcionário.
func (r *ClosurePostgresRepository) ListByWorker(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.ShiftClosure, error) {
	query := `
		SELECT
			id, turno_id, funcionario_id, aberto_em, fechado_em,
			total_vendas, valor_total, ticket_medio,
			valor_entrada, valor_saida, sobra_falta,
			formas_pagamento, relatorio, criado_em
		FROM fechamentos_turno
		WHERE funcionario_id = $1
		ORDER BY fechado_em DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, workerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying closures: %w", err)
	}
	defer rows.Close()

	var closures []*entity.ShiftClosure
	for rows.Next() {
		closure := &entity.ShiftClosure{}
		var breakdown, report []byte

		err := rows.Scan(
			&closure.ID,
			&closure.ShiftID,
			&closure.WorkerID,
			&closure.OpenedAt,
			&closure.ClosedAt,
			&closure.TotalSales,
			&closure.TotalAmount,
			&closure.AverageTicket,
			&closure.EntryTotal,
			&closure.ExitTotal,
			&closure.CashDiff,
			&breakdown,
			&report,
			&closure.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning closure: %w", err)
		}

		closure.Breakdown = entity.NewMethodBreakdown()
		if err := json.Unmarshal(breakdown, closure.Breakdown); err != nil {
			return nil, fmt.Errorf("error unmarshaling breakdown: %w", err)
		}
		closure.Report = json.RawMessage(report)

		closures = append(closures, closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closures: %w", err)
	}
	return closures, nil
}
