package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
)

// ListClosuresUseCase lista fechamentos de turno de um funcionário
// (auditoria e reimpressão de relatórios).
type ListClosuresUseCase struct {
	closureRepo port.ClosureRepository
}

// NewListClosuresUseCase cria uma nova instância do caso de uso
func NewListClosuresUseCase(closureRepo port.ClosureRepository) *ListClosuresUseCase {
	return &ListClosuresUseCase{
		closureRepo: closureRepo,
	}
}

// Execute devolve os fechamentos mais recentes do funcionário.
func (uc *ListClosuresUseCase) Execute(ctx context.Context, workerID uuid.UUID, limit int) ([]*entity.ShiftClosure, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	closures, err := uc.closureRepo.ListByWorker(ctx, workerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing closures: %w", err)
	}
	return closures, nil
}
