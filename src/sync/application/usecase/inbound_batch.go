package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	inventoryPort "github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/port"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shared/infrastructure/metrics"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/request"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/response"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/port"
)

// ErrEmptyBatch payload malformado: lote sem items. Único caso que
// aborta antes de qualquer processamento.
var ErrEmptyBatch = errors.New("lote inválido: items ausente ou vazio")

// InboundBatchUseCase processa um lote de itens vendidos no Linx:
// resolve cada linha para um produto local pelo código de barras,
// dá baixa no estoque e lança a movimentação.
//
// Política de falha parcial deliberada: produto não encontrado ou
// erro em uma linha não derruba o resto do lote — cada linha carrega
// seu próprio desfecho na resposta.
type InboundBatchUseCase struct {
	productRepo inventoryPort.ProductRepository
	auditRepo   port.SyncAuditRepository
	metrics     *metrics.SyncMetrics
}

// NewInboundBatchUseCase cria uma nova instância do caso de uso
func NewInboundBatchUseCase(
	productRepo inventoryPort.ProductRepository,
	auditRepo port.SyncAuditRepository,
	m *metrics.SyncMetrics,
) *InboundBatchUseCase {
	return &InboundBatchUseCase{
		productRepo: productRepo,
		auditRepo:   auditRepo,
		metrics:     m,
	}
}

// Execute processa o lote linha a linha, sempre devolvendo um
// resultado por linha de entrada, e grava um registro de auditoria
// do lote inteiro.
func (uc *InboundBatchUseCase) Execute(ctx context.Context, req *request.InboundBatchRequest) (*response.InboundBatchResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyBatch
	}

	source := req.Source
	if source == "" {
		source = "linx"
	}

	resultados := make([]response.ItemResult, 0, len(req.Items))

	for _, item := range req.Items {
		resultados = append(resultados, uc.processItem(ctx, item, source))
	}

	uc.audit(ctx, req)

	return &response.InboundBatchResponse{
		Success:    true,
		Resultados: resultados,
	}, nil
}

// processItem trata uma linha: baixa de estoque + movimentação como
// um passo lógico único; qualquer erro vira o desfecho da linha e o
// lote segue para a próxima.
func (uc *InboundBatchUseCase) processItem(ctx context.Context, item request.InboundItem, source string) response.ItemResult {
	result := response.ItemResult{CodigoBarras: item.CodigoBarras}

	product, err := uc.productRepo.FindByBarcode(ctx, item.CodigoBarras)
	if errors.Is(err, inventoryPort.ErrProductNotFound) {
		log.Printf("⚠️  Produto não encontrado para código %s (%s)", item.CodigoBarras, item.NomeProduto)
		result.Status = response.StatusProdutoNaoEncontrado
		uc.metrics.IncInboundItem(result.Status)
		return result
	}
	if err != nil {
		result.Status = response.StatusErro
		result.Erro = fmt.Sprintf("erro consultando produto: %v", err)
		uc.metrics.IncInboundItem(result.Status)
		return result
	}

	if err := uc.productRepo.RegisterSale(ctx, product, item.Quantidade, source); err != nil {
		log.Printf("ERRO: baixa de estoque falhou para %s: %v", item.CodigoBarras, err)
		result.Status = response.StatusErro
		result.Erro = fmt.Sprintf("erro atualizando estoque: %v", err)
		uc.metrics.IncInboundItem(result.Status)
		return result
	}

	result.Status = response.StatusSucesso
	uc.metrics.IncInboundItem(result.Status)
	return result
}

// audit grava o registro de auditoria do lote inteiro.
func (uc *InboundBatchUseCase) audit(ctx context.Context, req *request.InboundBatchRequest) {
	payload, err := json.Marshal(req)
	if err != nil {
		log.Printf("ERRO: falha serializando lote para auditoria: %v", err)
		return
	}
	if err := uc.auditRepo.Create(ctx, entity.NewDeliveredRecord(entity.DirectionInbound, payload)); err != nil {
		log.Printf("ERRO: falha gravando auditoria do lote: %v", err)
	}
}
