package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/metrics"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// Status devolvidos pelo envio imediato.
const (
	SendStatusDelivered = "enviado"
	SendStatusQueued    = "pendente"
)

// SendSaleUseCase envio imediato de uma venda ao Linx. Falhou?
// O payload vai para a fila de pendências e a varredura periódica
// assume dali em diante.
type SendSaleUseCase struct {
	sender      port.SaleSender
	pendingRepo port.PendingSyncRepository
	auditRepo   port.SyncAuditRepository
	maxAttempts int
	metrics     *metrics.SyncMetrics
	now         func() time.Time
}

// NewSendSaleUseCase cria uma nova instância do caso de uso
func NewSendSaleUseCase(
	sender port.SaleSender,
	pendingRepo port.PendingSyncRepository,
	auditRepo port.SyncAuditRepository,
	maxAttempts int,
	m *metrics.SyncMetrics,
) *SendSaleUseCase {
	return &SendSaleUseCase{
		sender:      sender,
		pendingRepo: pendingRepo,
		auditRepo:   auditRepo,
		maxAttempts: maxAttempts,
		metrics:     m,
		now:         time.Now,
	}
}

// Execute tenta a entrega síncrona do payload.
//
// Sucesso → só o registro de auditoria "entregue"; o payload nunca
// toca a tabela de pendências. Falha → item pendente com zero
// tentativas consumidas, elegível já na próxima varredura.
func (uc *SendSaleUseCase) Execute(ctx context.Context, payload json.RawMessage) (string, error) {
	payload = ensureIdempotencyKey(payload)

	sendErr := uc.sender.Send(ctx, payload)
	if sendErr == nil {
		uc.metrics.IncDelivered()
		if auditErr := uc.auditRepo.Create(ctx, entity.NewDeliveredRecord(entity.DirectionOutbound, payload)); auditErr != nil {
			log.Printf("ERRO: falha gravando auditoria de entrega: %v", auditErr)
		}
		return SendStatusDelivered, nil
	}

	log.Printf("⚠️  Envio imediato falhou, enfileirando: %v", sendErr)

	item := entity.NewPendingSyncItem(payload, uc.maxAttempts, uc.now())
	if err := uc.pendingRepo.Create(ctx, item); err != nil {
		return "", fmt.Errorf("error queueing pending sync item: %w", err)
	}

	return SendStatusQueued, nil
}

// ensureIdempotencyKey propaga o id da venda como chave de
// idempotência. A entrega é at-least-once (um timeout pode esconder
// um envio que chegou), então o lado remoto deduplica por essa chave.
func ensureIdempotencyKey(payload json.RawMessage) json.RawMessage {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return payload
	}
	if _, ok := doc["idempotency_key"]; ok {
		return payload
	}
	id, ok := doc["id"]
	if !ok {
		return payload
	}

	doc["idempotency_key"] = id
	out, err := json.Marshal(doc)
	if err != nil {
		return payload
	}
	return out
}
