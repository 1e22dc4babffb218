package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/application/response"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/port"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/infrastructure/cache"
)

// CloseShiftUseCase fecha o turno aberto de um funcionário:
// busca as vendas do período, roda a reconciliação e persiste o
// snapshot de fechamento.
type CloseShiftUseCase struct {
	shiftRepo   port.ShiftRepository
	saleRepo    port.SaleRepository
	closureRepo port.ClosureRepository
	pmCache     *cache.PaymentMethodCache
	now         func() time.Time
}

// NewCloseShiftUseCase cria uma nova instância do caso de uso
func NewCloseShiftUseCase(
	shiftRepo port.ShiftRepository,
	saleRepo port.SaleRepository,
	closureRepo port.ClosureRepository,
	pmCache *cache.PaymentMethodCache,
) *CloseShiftUseCase {
	return &CloseShiftUseCase{
		shiftRepo:   shiftRepo,
		saleRepo:    saleRepo,
		closureRepo: closureRepo,
		pmCache:     pmCache,
		now:         time.Now,
	}
}

// Execute fecha o turno aberto do funcionário.
//
// Turno sem vendas é tratado aqui, antes da reconciliação: devolve
// ErrNoSalesInShift e nenhum fechamento degenerado é gerado.
func (uc *CloseShiftUseCase) Execute(ctx context.Context, workerID uuid.UUID) (*response.CloseShiftResponse, error) {
	// 1. Localizar o turno aberto
	shift, err := uc.shiftRepo.FindOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("error finding open shift: %w", err)
	}
	if shift == nil {
		return nil, entity.ErrNoOpenShift
	}

	closedAt := uc.now()

	// 2. Buscar as vendas do período do turno
	sales, err := uc.saleRepo.ListByWorkerBetween(ctx, workerID, shift.OpenedAt, closedAt)
	if err != nil {
		return nil, fmt.Errorf("error listing shift sales: %w", err)
	}
	if len(sales) == 0 {
		return nil, entity.ErrNoSalesInShift
	}

	// 3. Reconciliação (pura, pré-condição len(sales) > 0 garantida acima)
	rec := entity.Reconcile(sales)

	// 4. Relatório completo para auditoria/reimpressão
	report, err := uc.buildReport(shift, closedAt, rec)
	if err != nil {
		return nil, fmt.Errorf("error building closure report: %w", err)
	}

	closure := entity.NewShiftClosure(shift, closedAt, rec, report)

	// 5. Persistir o snapshot e fechar o turno
	if err := uc.closureRepo.Create(ctx, closure); err != nil {
		return nil, fmt.Errorf("error saving shift closure: %w", err)
	}
	if err := uc.shiftRepo.Close(ctx, shift.ID, closedAt); err != nil {
		return nil, fmt.Errorf("error closing shift: %w", err)
	}

	log.Printf("✅ Turno fechado: ID=%s, Vendas=%d, Total=%s",
		shift.ID, closure.TotalSales, closure.TotalAmount)

	return response.FromClosure(closure), nil
}

// buildReport monta o payload completo do relatório de fechamento,
// resolvendo os nomes de exibição das formas de pagamento.
func (uc *CloseShiftUseCase) buildReport(shift *entity.Shift, closedAt time.Time, rec entity.Reconciliation) (json.RawMessage, error) {
	linhas := make([]response.ReportLine, 0, rec.Breakdown.Len())
	for _, label := range rec.Breakdown.Labels() {
		totals, _ := rec.Breakdown.Get(label)
		linhas = append(linhas, response.ReportLine{
			Codigo:     label,
			Nome:       uc.displayName(label),
			Quantidade: totals.Count,
			Valor:      totals.Amount,
		})
	}

	payload := response.ReportPayload{
		FuncionarioID: shift.WorkerID,
		AbertoEm:      shift.OpenedAt,
		FechadoEm:     closedAt,
		TotalVendas:   rec.TotalSales,
		ValorTotal:    rec.TotalAmount,
		TicketMedio:   rec.AverageTicket,
		SobraFalta:    rec.CashDiff,
		Linhas:        linhas,
	}

	return json.Marshal(payload)
}

func (uc *CloseShiftUseCase) displayName(label string) string {
	if uc.pmCache == nil {
		return label
	}
	return uc.pmCache.DisplayName(label)
}
