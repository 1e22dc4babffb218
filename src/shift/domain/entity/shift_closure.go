package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftClosure snapshot do fechamento de um turno (Aggregate Root).
// Criado exatamente uma vez por fechamento e nunca alterado depois:
// a tabela de fechamentos é um ledger append-only para auditoria
// e reimpressão.
type ShiftClosure struct {
	ID            uuid.UUID        `json:"id"`
	ShiftID       uuid.UUID        `json:"turno_id"`
	WorkerID      uuid.UUID        `json:"funcionario_id"`
	OpenedAt      time.Time        `json:"aberto_em"`
	ClosedAt      time.Time        `json:"fechado_em"`
	TotalSales    int              `json:"total_vendas"`
	TotalAmount   decimal.Decimal  `json:"valor_total"`
	AverageTicket decimal.Decimal  `json:"ticket_medio"`
	EntryTotal    decimal.Decimal  `json:"valor_entrada"`
	ExitTotal     decimal.Decimal  `json:"valor_saida"`
	CashDiff      decimal.Decimal  `json:"sobra_falta"`
	Breakdown     *MethodBreakdown `json:"formas_pagamento"`
	Report        json.RawMessage  `json:"relatorio"` // payload completo para reimpressão
	CreatedAt     time.Time        `json:"criado_em"`
}

// NewShiftClosure monta o snapshot de fechamento a partir do turno,
// do resultado da reconciliação e do relatório completo serializado.
func NewShiftClosure(shift *Shift, closedAt time.Time, rec Reconciliation, report json.RawMessage) *ShiftClosure {
	return &ShiftClosure{
		ID:            uuid.New(),
		ShiftID:       shift.ID,
		WorkerID:      shift.WorkerID,
		OpenedAt:      shift.OpenedAt,
		ClosedAt:      closedAt,
		TotalSales:    rec.TotalSales,
		TotalAmount:   rec.TotalAmount,
		AverageTicket: rec.AverageTicket,
		EntryTotal:    rec.EntryTotal,
		ExitTotal:     rec.ExitTotal,
		CashDiff:      rec.CashDiff,
		Breakdown:     rec.Breakdown,
		Report:        report,
		CreatedAt:     time.Now(),
	}
}
