package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Direções de sincronização.
const (
	DirectionOutbound = "saida"   // este sistema → Linx
	DirectionInbound  = "entrada" // Linx → este sistema
)

// Status de um registro de auditoria.
const (
	StatusDelivered      = "entregue"
	StatusFailedTerminal = "falha_definitiva"
)

// SyncAuditRecord registro append-only do desfecho de uma
// sincronização. Nunca é alterado nem apagado; existe só para
// auditoria operacional — falha definitiva não gera alerta, o
// operador inspeciona esta tabela.
type SyncAuditRecord struct {
	ID        uuid.UUID       `json:"id"`
	Direction string          `json:"direcao"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	Error     string          `json:"erro"`
	CreatedAt time.Time       `json:"criado_em"`
}

// NewDeliveredRecord registra uma entrega bem-sucedida.
func NewDeliveredRecord(direction string, payload json.RawMessage) *SyncAuditRecord {
	return &SyncAuditRecord{
		ID:        uuid.New(),
		Direction: direction,
		Payload:   payload,
		Status:    StatusDelivered,
		CreatedAt: time.Now(),
	}
}

// NewFailedTerminalRecord registra uma falha definitiva com o
// detalhe do último erro.
func NewFailedTerminalRecord(direction string, payload json.RawMessage, lastErr string) *SyncAuditRecord {
	return &SyncAuditRecord{
		ID:        uuid.New(),
		Direction: direction,
		Payload:   payload,
		Status:    StatusFailedTerminal,
		Error:     lastErr,
		CreatedAt: time.Now(),
	}
}
