package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
)

// CloseShiftResponse DTO devolvido pelo fechamento de turno,
// pronto para exibição/impressão no frontend.
type CloseShiftResponse struct {
	FechamentoID    uuid.UUID               `json:"fechamento_id"`
	TurnoID         uuid.UUID               `json:"turno_id"`
	FuncionarioID   uuid.UUID               `json:"funcionario_id"`
	AbertoEm        time.Time               `json:"aberto_em"`
	FechadoEm       time.Time               `json:"fechado_em"`
	TotalVendas     int                     `json:"total_vendas"`
	ValorTotal      decimal.Decimal         `json:"valor_total"`
	TicketMedio     decimal.Decimal         `json:"ticket_medio"`
	ValorEntrada    decimal.Decimal         `json:"valor_entrada"`
	ValorSaida      decimal.Decimal         `json:"valor_saida"`
	SobraFalta      decimal.Decimal         `json:"sobra_falta"`
	FormasPagamento *entity.MethodBreakdown `json:"formas_pagamento"`
	Relatorio       json.RawMessage         `json:"relatorio"`
}

// FromClosure monta o DTO a partir do snapshot persistido.
func FromClosure(c *entity.ShiftClosure) *CloseShiftResponse {
	return &CloseShiftResponse{
		FechamentoID:    c.ID,
		TurnoID:         c.ShiftID,
		FuncionarioID:   c.WorkerID,
		AbertoEm:        c.OpenedAt,
		FechadoEm:       c.ClosedAt,
		TotalVendas:     c.TotalSales,
		ValorTotal:      c.TotalAmount,
		TicketMedio:     c.AverageTicket,
		ValorEntrada:    c.EntryTotal,
		ValorSaida:      c.ExitTotal,
		SobraFalta:      c.CashDiff,
		FormasPagamento: c.Breakdown,
		Relatorio:       c.Report,
	}
}

// ReportLine linha do relatório completo de fechamento.
type ReportLine struct {
	Codigo     string          `json:"codigo"`
	Nome       string          `json:"nome"`
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// ReportPayload relatório completo embutido no fechamento para
// auditoria e reimpressão. Tratado como payload opaco pelo restante
// do sistema.
type ReportPayload struct {
	FuncionarioID uuid.UUID       `json:"funcionario_id"`
	AbertoEm      time.Time       `json:"aberto_em"`
	FechadoEm     time.Time       `json:"fechado_em"`
	TotalVendas   int             `json:"total_vendas"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	TicketMedio   decimal.Decimal `json:"ticket_medio"`
	SobraFalta    decimal.Decimal `json:"sobra_falta"`
	Linhas        []ReportLine    `json:"linhas"`
}
