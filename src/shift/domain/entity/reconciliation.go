package entity

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MethodTotals acumulado de uma forma de pagamento no turno.
type MethodTotals struct {
	Count  int             `json:"quantidade"`
	Amount decimal.Decimal `json:"valor"`
}

// MethodBreakdown mapa rótulo → acumulado, preservando a ordem de
// primeira ocorrência. A ordem governa apenas a exibição no relatório.
type MethodBreakdown struct {
	labels []string
	totals map[string]MethodTotals
}

// NewMethodBreakdown cria um breakdown vazio.
func NewMethodBreakdown() *MethodBreakdown {
	return &MethodBreakdown{totals: make(map[string]MethodTotals)}
}

// Add acumula uma venda no rótulo informado.
func (b *MethodBreakdown) Add(label string, amount decimal.Decimal) {
	t, ok := b.totals[label]
	if !ok {
		b.labels = append(b.labels, label)
	}
	t.Count++
	t.Amount = t.Amount.Add(amount)
	b.totals[label] = t
}

// Labels devolve os rótulos na ordem de primeira ocorrência.
func (b *MethodBreakdown) Labels() []string {
	out := make([]string, len(b.labels))
	copy(out, b.labels)
	return out
}

// Get devolve o acumulado de um rótulo.
func (b *MethodBreakdown) Get(label string) (MethodTotals, bool) {
	t, ok := b.totals[label]
	return t, ok
}

// Len devolve quantos rótulos distintos foram acumulados.
func (b *MethodBreakdown) Len() int {
	return len(b.labels)
}

// MarshalJSON serializa como objeto JSON com as chaves na ordem
// de primeira ocorrência.
func (b *MethodBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range b.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.totals[label])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reconstrói o breakdown de um objeto JSON. A ordem das
// chaves no documento original é preservada.
func (b *MethodBreakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	// abre-chaves
	if _, err := dec.Token(); err != nil {
		return err
	}

	b.labels = nil
	b.totals = make(map[string]MethodTotals)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label := tok.(string)

		var t MethodTotals
		if err := dec.Decode(&t); err != nil {
			return err
		}
		b.labels = append(b.labels, label)
		b.totals[label] = t
	}

	// fecha-chaves
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Reconciliation resultado do cálculo de fechamento sobre as vendas
// de um turno.
type Reconciliation struct {
	TotalSales    int
	TotalAmount   decimal.Decimal
	AverageTicket decimal.Decimal
	EntryTotal    decimal.Decimal
	ExitTotal     decimal.Decimal
	CashDiff      decimal.Decimal // sobra/falta
	Breakdown     *MethodBreakdown
}

// Reconcile agrega as vendas de um turno em um resumo de fechamento.
// Função pura; pré-condição: vendas não vazio (o chamador trata o
// turno sem vendas antes de chegar aqui).
//
// Não existe contagem física de gaveta como entrada independente, então
// entrada e saída são ambas o valor total vendido e a sobra/falta é
// sempre zero.
func Reconcile(sales []Sale) Reconciliation {
	breakdown := NewMethodBreakdown()
	total := decimal.Zero

	for _, sale := range sales {
		total = total.Add(sale.Total)
		breakdown.Add(sale.EffectiveMethod(), sale.Total)
	}

	count := decimal.NewFromInt(int64(len(sales)))

	return Reconciliation{
		TotalSales:    len(sales),
		TotalAmount:   total,
		AverageTicket: total.Div(count),
		EntryTotal:    total,
		ExitTotal:     total,
		CashDiff:      total.Sub(total),
		Breakdown:     breakdown,
	}
}
