package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// SyncAuditPostgresRepository implementa SyncAuditRepository usando
// PostgreSQL. Só insert: o ledger nunca sofre update nem delete.
type SyncAuditPostgresRepository struct {
	db *sql.DB
}

// NewSyncAuditPostgresRepository cria uma nova instância do repositório
func NewSyncAuditPostgresRepository(db *sql.DB) port.SyncAuditRepository {
	return &SyncAuditPostgresRepository{
		db: db,
	}
}

// Create grava um registro de desfecho de sincronização.
func (r *SyncAuditPostgresRepository) Create(ctx context.Context, record *entity.SyncAuditRecord) error {
	query := `
		INSERT INTO sync_auditoria (id, direcao, payload, status, erro, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Direction,
		[]byte(record.Payload),
		record.Status,
		record.Error,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating audit record: %w", err)
	}
	return nil
}
