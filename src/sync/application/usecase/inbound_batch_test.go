package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/request"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/response"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
)

func TestInboundBatch_PartialResolution(t *testing.T) {
	products := newFakeProductRepo()
	products.add("789100001", 50)
	audit := &fakeAuditRepo{}
	uc := NewInboundBatchUseCase(products, audit, nil)

	req := &request.InboundBatchRequest{
		Source: "linx",
		Items: []request.InboundItem{
			{CodigoBarras: "789100001", Quantidade: decimal.NewFromInt(3), NomeProduto: "Água Mineral"},
			{CodigoBarras: "789999999", Quantidade: decimal.NewFromInt(1), NomeProduto: "Produto Fantasma"},
		},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.Resultados, 2, "um resultado por linha de entrada")
	assert.Equal(t, response.StatusSucesso, resp.Resultados[0].Status)
	assert.Equal(t, response.StatusProdutoNaoEncontrado, resp.Resultados[1].Status)

	// Estoque do produto resolvido baixado exatamente na quantidade pedida
	product := products.products["789100001"]
	assert.True(t, product.Quantity.Equal(decimal.NewFromInt(47)),
		"quantidade = %s", product.Quantity)

	require.Len(t, products.sales, 1)
	assert.Equal(t, "linx", products.sales[0].source)

	// Auditoria do lote inteiro, direção entrada
	require.Len(t, audit.records, 1)
	assert.Equal(t, entity.DirectionInbound, audit.records[0].Direction)
}

func TestInboundBatch_LineErrorDoesNotAbortBatch(t *testing.T) {
	products := newFakeProductRepo()
	products.add("789100001", 10)
	products.add("789100002", 10)
	products.failBarcode = "789100001"
	uc := NewInboundBatchUseCase(products, &fakeAuditRepo{}, nil)

	req := &request.InboundBatchRequest{
		Items: []request.InboundItem{
			{CodigoBarras: "789100001", Quantidade: decimal.NewFromInt(2)},
			{CodigoBarras: "789100002", Quantidade: decimal.NewFromInt(4)},
		},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Resultados, 2)
	assert.Equal(t, response.StatusErro, resp.Resultados[0].Status)
	assert.Contains(t, resp.Resultados[0].Erro, "erro atualizando estoque")
	assert.Equal(t, response.StatusSucesso, resp.Resultados[1].Status)

	// A linha boa segue processada normalmente
	assert.True(t, products.products["789100002"].Quantity.Equal(decimal.NewFromInt(6)))
}

func TestInboundBatch_EmptyBatchIsRejected(t *testing.T) {
	uc := NewInboundBatchUseCase(newFakeProductRepo(), &fakeAuditRepo{}, nil)

	_, err := uc.Execute(context.Background(), &request.InboundBatchRequest{})
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = uc.Execute(context.Background(), &request.InboundBatchRequest{Items: []request.InboundItem{}})
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestInboundBatch_DefaultsSourceToLinx(t *testing.T) {
	products := newFakeProductRepo()
	products.add("789100001", 5)
	uc := NewInboundBatchUseCase(products, &fakeAuditRepo{}, nil)

	req := &request.InboundBatchRequest{
		Items: []request.InboundItem{
			{CodigoBarras: "789100001", Quantidade: decimal.NewFromInt(1)},
		},
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, products.sales, 1)
	assert.Equal(t, "linx", products.sales[0].source)
}
