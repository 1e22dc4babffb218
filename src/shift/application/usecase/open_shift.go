package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
)

// OpenShiftUseCase abre um turno para um funcionário.
type OpenShiftUseCase struct {
	shiftRepo port.ShiftRepository
}

// NewOpenShiftUseCase cria uma nova instância do caso de uso
func NewOpenShiftUseCase(shiftRepo port.ShiftRepository) *OpenShiftUseCase {
	return &OpenShiftUseCase{
		shiftRepo: shiftRepo,
	}
}

// Execute abre um turno. Um funcionário só pode ter um turno aberto
// por vez.
func (uc *OpenShiftUseCase) Execute(ctx context.Context, workerID uuid.UUID) (*entity.Shift, error) {
	open, err := uc.shiftRepo.FindOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("error checking open shift: %w", err)
	}
	if open != nil {
		return nil, entity.ErrShiftAlreadyOpen
	}

	shift := entity.NewShift(workerID)
	if err := uc.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("error creating shift: %w", err)
	}

	log.Printf("✅ Turno aberto: ID=%s, Funcionario=%s", shift.ID, workerID)
	return shift, nil
}
