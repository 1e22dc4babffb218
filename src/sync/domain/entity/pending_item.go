package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PendingSyncItem venda aguardando entrega ao POS externo (Linx).
// Criado quando o envio imediato falha; a varredura periódica
// reprocessa até entregar ou esgotar o teto de tentativas.
//
// Invariante: enquanto o item existe, Attempts < MaxAttempts. Ao
// atingir o teto o item é removido e substituído por um registro de
// auditoria de falha definitiva.
type PendingSyncItem struct {
	ID          uuid.UUID       `json:"id"`
	Payload     json.RawMessage `json:"payload"`
	Attempts    int             `json:"tentativas"`
	MaxAttempts int             `json:"max_tentativas"`
	NextSendAt  time.Time       `json:"proximo_envio_em"`
	CreatedAt   time.Time       `json:"criado_em"`
}

// NewPendingSyncItem enfileira um payload recém-falhado: zero
// tentativas consumidas, elegível imediatamente.
func NewPendingSyncItem(payload json.RawMessage, maxAttempts int, now time.Time) *PendingSyncItem {
	return &PendingSyncItem{
		ID:          uuid.New(),
		Payload:     payload,
		Attempts:    0,
		MaxAttempts: maxAttempts,
		NextSendAt:  now,
		CreatedAt:   now,
	}
}

// Eligible indica se o item já pode ser reprocessado.
func (p *PendingSyncItem) Eligible(now time.Time) bool {
	return !now.Before(p.NextSendAt)
}

// RegisterFailure consome uma tentativa após um envio falhado.
// Devolve true quando o teto foi atingido (falha definitiva: o item
// deve ser removido e auditado). Caso contrário agenda o próximo
// envio com backoff linear: now + tentativas * backoffUnit.
func (p *PendingSyncItem) RegisterFailure(now time.Time, backoffUnit time.Duration) bool {
	p.Attempts++
	if p.Attempts >= p.MaxAttempts {
		return true
	}
	p.NextSendAt = now.Add(time.Duration(p.Attempts) * backoffUnit)
	return false
}
