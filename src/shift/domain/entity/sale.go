package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FallbackPaymentLabel agrupa vendas sem forma de pagamento informada.
const FallbackPaymentLabel = "outro"

// Sale representa uma venda concluída no caixa.
// Imutável depois de criada: o fechamento de turno apenas lê,
// nunca altera nem apaga vendas.
type Sale struct {
	ID               uuid.UUID       `json:"id"`
	WorkerID         uuid.UUID       `json:"funcionario_id"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    string          `json:"forma_pagamento"`
	PaymentSubMethod string          `json:"sub_forma_pagamento"` // bandeira do cartão, quando houver
	CreatedAt        time.Time       `json:"criado_em"`
}

// EffectiveMethod resolve o rótulo de agrupamento da venda.
// A sub-forma (bandeira) tem precedência sobre a forma principal;
// sem nenhuma das duas cai no rótulo "outro".
func (s Sale) EffectiveMethod() string {
	if s.PaymentSubMethod != "" {
		return s.PaymentSubMethod
	}
	if s.PaymentMethod != "" {
		return s.PaymentMethod
	}
	return FallbackPaymentLabel
}
