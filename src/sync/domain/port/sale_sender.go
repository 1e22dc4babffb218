package port

import (
	"context"
	"encoding/json"
)

// SaleSender entrega um payload de venda ao POS externo.
//
// Contrato de entrega: at-least-once. Um timeout pode mascarar uma
// entrega que na verdade aconteceu, então o payload sempre carrega o
// id da venda como chave de idempotência e a deduplicação é
// responsabilidade do lado remoto.
type SaleSender interface {
	// Send envia o payload; qualquer erro (rede, timeout, não-2xx)
	// conta como falha de entrega e alimenta o mesmo fluxo de retry
	Send(ctx context.Context, payload json.RawMessage) error
}
