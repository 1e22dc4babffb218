package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/response"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// SyncStatusUseCase consulta operacional do estado da fila de sync.
type SyncStatusUseCase struct {
	pendingRepo   port.PendingSyncRepository
	maxAttempts   int
	backoffUnit   time.Duration
	sweepInterval time.Duration
}

// NewSyncStatusUseCase cria uma nova instância do caso de uso
func NewSyncStatusUseCase(
	pendingRepo port.PendingSyncRepository,
	maxAttempts int,
	backoffUnit time.Duration,
	sweepInterval time.Duration,
) *SyncStatusUseCase {
	return &SyncStatusUseCase{
		pendingRepo:   pendingRepo,
		maxAttempts:   maxAttempts,
		backoffUnit:   backoffUnit,
		sweepInterval: sweepInterval,
	}
}

// Execute devolve o tamanho da fila, a pendência mais antiga e a
// configuração ativa. Sem efeitos colaterais.
func (uc *SyncStatusUseCase) Execute(ctx context.Context) (*response.SyncStatusResponse, error) {
	count, oldest, err := uc.pendingRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading queue stats: %w", err)
	}

	return &response.SyncStatusResponse{
		Pendentes:          count,
		MaisAntigoCriadoEm: oldest,
		MaxTentativas:      uc.maxAttempts,
		BackoffUnit:        uc.backoffUnit.String(),
		SweepInterval:      uc.sweepInterval.String(),
	}, nil
}
