package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// PendingSyncPostgresRepository implementa PendingSyncRepository
// usando PostgreSQL. Operações de linha única; a atomicidade de cada
// update/delete fica com o banco.
type PendingSyncPostgresRepository struct {
	db *sql.DB
}

// NewPendingSyncPostgresRepository cria uma nova instância do repositório
func NewPendingSyncPostgresRepository(db *sql.DB) port.PendingSyncRepository {
	return &PendingSyncPostgresRepository{
		db: db,
	}
}

// Create insere um item recém-enfileirado.
func (r *PendingSyncPostgresRepository) Create(ctx context.Context, item *entity.PendingSyncItem) error {
	query := `
		INSERT INTO sync_pendentes (id, payload, tentativas, max_tentativas, proximo_envio_em, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		[]byte(item.Payload),
		item.Attempts,
		item.MaxAttempts,
		item.NextSendAt,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating pending item: %w", err)
	}
	return nil
}

// Update grava tentativas e próximo envio após um retry falhado.
func (r *PendingSyncPostgresRepository) Update(ctx context.Context, item *entity.PendingSyncItem) error {
	query := `
		UPDATE sync_pendentes
		SET tentativas = $2, proximo_envio_em = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, item.ID, item.Attempts, item.NextSendAt)
	if err != nil {
		return fmt.Errorf("error updating pending item: %w", err)
	}
	return nil
}

// Delete remove um item da fila.
func (r *PendingSyncPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sync_pendentes WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting pending item: %w", err)
	}
	return nil
}

// ListEligible devolve os itens elegíveis em ordem crescente de criação.
func (r *PendingSyncPostgresRepository) ListEligible(ctx context.Context, now time.Time) ([]*entity.PendingSyncItem, error) {
	query := `
		SELECT id, payload, tentativas, max_tentativas, proximo_envio_em, criado_em
		FROM sync_pendentes
		WHERE proximo_envio_em <= $1
		ORDER BY criado_em ASC
	`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("error querying eligible items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PendingSyncItem
	for rows.Next() {
		item := &entity.PendingSyncItem{}
		var payload []byte

		err := rows.Scan(
			&item.ID,
			&payload,
			&item.Attempts,
			&item.MaxAttempts,
			&item.NextSendAt,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending item: %w", err)
		}
		item.Payload = payload
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending items: %w", err)
	}
	return items, nil
}

// Stats devolve o tamanho da fila e a criação do item mais antigo.
func (r *PendingSyncPostgresRepository) Stats(ctx context.Context) (int, *time.Time, error) {
	query := `
		SELECT COUNT(*), MIN(criado_em)
		FROM sync_pendentes
	`

	var count int
	var oldest sql.NullTime

	err := r.db.QueryRowContext(ctx, query).Scan(&count, &oldest)
	if err != nil {
		return 0, nil, fmt.Errorf("error querying queue stats: %w", err)
	}

	if !oldest.Valid {
		return count, nil, nil
	}
	return count, &oldest.Time, nil
}
