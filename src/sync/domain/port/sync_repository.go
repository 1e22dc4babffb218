package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
)

// PendingSyncRepository persiste a fila de pendências de envio.
type PendingSyncRepository interface {
	// Create insere um item recém-enfileirado
	Create(ctx context.Context, item *entity.PendingSyncItem) error

	// Update grava tentativas e próximo envio após uma falha de retry
	Update(ctx context.Context, item *entity.PendingSyncItem) error

	// Delete remove o item (entrega ou falha definitiva)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListEligible devolve os itens com proximo_envio_em <= now,
	// em ordem crescente de criação
	ListEligible(ctx context.Context, now time.Time) ([]*entity.PendingSyncItem, error)

	// Stats devolve o tamanho da fila e a criação do item mais antigo
	Stats(ctx context.Context) (count int, oldest *time.Time, err error)
}

// SyncAuditRepository ledger append-only dos desfechos de sincronização.
type SyncAuditRepository interface {
	Create(ctx context.Context, record *entity.SyncAuditRecord) error
}
