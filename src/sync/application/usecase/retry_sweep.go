package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/metrics"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// SweepResult resumo de uma passada da varredura.
type SweepResult struct {
	Processed      int
	Delivered      int
	Retried        int
	FailedTerminal int
}

// RetrySweepUseCase varredura periódica da fila de pendências.
//
// Cada passada processa os itens elegíveis sequencialmente, em ordem
// crescente de criação. Sem paralelismo intra-passada: a duração é
// limitada por itens × timeout de envio, aceitável no volume de uma
// única loja. O mutex impede que o timer sobreponha passadas.
type RetrySweepUseCase struct {
	sender      port.SaleSender
	pendingRepo port.PendingSyncRepository
	auditRepo   port.SyncAuditRepository
	backoffUnit time.Duration
	metrics     *metrics.SyncMetrics
	now         func() time.Time
	mu          sync.Mutex
}

// NewRetrySweepUseCase cria uma nova instância do caso de uso
func NewRetrySweepUseCase(
	sender port.SaleSender,
	pendingRepo port.PendingSyncRepository,
	auditRepo port.SyncAuditRepository,
	backoffUnit time.Duration,
	m *metrics.SyncMetrics,
) *RetrySweepUseCase {
	return &RetrySweepUseCase{
		sender:      sender,
		pendingRepo: pendingRepo,
		auditRepo:   auditRepo,
		backoffUnit: backoffUnit,
		metrics:     m,
		now:         time.Now,
	}
}

// RunOnce executa uma passada completa da varredura. Invocável
// diretamente, então testes disparam passadas determinísticas em vez
// de esperar o relógio.
func (uc *RetrySweepUseCase) RunOnce(ctx context.Context) (SweepResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var result SweepResult

	items, err := uc.pendingRepo.ListEligible(ctx, uc.now())
	if err != nil {
		return result, fmt.Errorf("error listing eligible items: %w", err)
	}

	for _, item := range items {
		result.Processed++

		sendErr := uc.sender.Send(ctx, item.Payload)
		if sendErr == nil {
			if err := uc.deliver(ctx, item); err != nil {
				return result, err
			}
			result.Delivered++
			continue
		}

		terminal := item.RegisterFailure(uc.now(), uc.backoffUnit)
		if terminal {
			if err := uc.discard(ctx, item, sendErr); err != nil {
				return result, err
			}
			result.FailedTerminal++
			continue
		}

		if err := uc.pendingRepo.Update(ctx, item); err != nil {
			return result, fmt.Errorf("error updating pending item: %w", err)
		}
		uc.metrics.IncRetries()
		result.Retried++
	}

	if result.Processed > 0 {
		log.Printf("🔁 Varredura de sync: processados=%d entregues=%d reagendados=%d descartados=%d",
			result.Processed, result.Delivered, result.Retried, result.FailedTerminal)
	}

	return result, nil
}

// deliver remove o item da fila e grava a auditoria de entrega.
func (uc *RetrySweepUseCase) deliver(ctx context.Context, item *entity.PendingSyncItem) error {
	if err := uc.pendingRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("error deleting delivered item: %w", err)
	}
	if err := uc.auditRepo.Create(ctx, entity.NewDeliveredRecord(entity.DirectionOutbound, item.Payload)); err != nil {
		log.Printf("ERRO: falha gravando auditoria de entrega: %v", err)
	}
	uc.metrics.IncDelivered()
	return nil
}

// discard remove o item que esgotou o teto e grava a falha
// definitiva com o detalhe do último erro.
func (uc *RetrySweepUseCase) discard(ctx context.Context, item *entity.PendingSyncItem, lastErr error) error {
	if err := uc.pendingRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("error deleting terminal item: %w", err)
	}
	record := entity.NewFailedTerminalRecord(entity.DirectionOutbound, item.Payload, lastErr.Error())
	if err := uc.auditRepo.Create(ctx, record); err != nil {
		log.Printf("ERRO: falha gravando auditoria de falha definitiva: %v", err)
	}
	uc.metrics.IncTerminalFailures()
	log.Printf("❌ Pendência descartada após %d tentativas: %v", item.Attempts, lastErr)
	return nil
}
