package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
)

// ShiftRepository persiste o estado de turnos abertos/fechados.
type ShiftRepository interface {
	// Create registra a abertura de um turno
	Create(ctx context.Context, shift *entity.Shift) error

	// FindOpenByWorker devolve o turno aberto do funcionário, ou nil
	FindOpenByWorker(ctx context.Context, workerID uuid.UUID) (*entity.Shift, error)

	// Close marca o turno como fechado no instante informado
	Close(ctx context.Context, shiftID uuid.UUID, closedAt time.Time) error
}

// SaleRepository acesso somente-leitura às vendas registradas pelo
// checkout. O fechamento de turno nunca cria nem altera vendas.
type SaleRepository interface {
	// ListByWorkerBetween devolve as vendas do funcionário no intervalo
	// [from, to), em ordem de criação
	ListByWorkerBetween(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]entity.Sale, error)
}

// ClosureRepository ledger append-only de fechamentos de turno.
type ClosureRepository interface {
	// Create insere o snapshot de fechamento (nunca há update)
	Create(ctx context.Context, closure *entity.ShiftClosure) error

	// ListByWorker devolve os fechamentos mais recentes do funcionário
	ListByWorker(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.ShiftClosure, error)
}
