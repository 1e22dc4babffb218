package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
)

func TestSendSale_ImmediateSuccessNeverTouchesQueue(t *testing.T) {
	sender := &fakeSender{failures: 0}
	pending := &fakePendingRepo{}
	audit := &fakeAuditRepo{}
	uc := NewSendSaleUseCase(sender, pending, audit, 3, nil)

	status, err := uc.Execute(context.Background(), json.RawMessage(`{"id":"v1","total":45.5}`))
	require.NoError(t, err)

	assert.Equal(t, SendStatusDelivered, status)
	assert.Empty(t, pending.items, "venda entregue de primeira não passa pela fila")

	delivered := audit.byStatus(entity.StatusDelivered)
	require.Len(t, delivered, 1)
	assert.Equal(t, entity.DirectionOutbound, delivered[0].Direction)
}

func TestSendSale_FailureQueuesWithZeroAttempts(t *testing.T) {
	sender := &fakeSender{failures: -1}
	pending := &fakePendingRepo{}
	audit := &fakeAuditRepo{}
	uc := NewSendSaleUseCase(sender, pending, audit, 3, nil)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	status, err := uc.Execute(context.Background(), json.RawMessage(`{"id":"v2"}`))
	require.NoError(t, err)

	assert.Equal(t, SendStatusQueued, status)
	require.Len(t, pending.items, 1)

	item := pending.items[0]
	assert.Equal(t, 0, item.Attempts)
	assert.Equal(t, 3, item.MaxAttempts)
	assert.True(t, item.Eligible(now), "item enfileirado é elegível já na próxima varredura")

	// Falha transitória não gera auditoria; só entrega ou falha definitiva
	assert.Empty(t, audit.records)
}

func TestSendSale_InjectsIdempotencyKey(t *testing.T) {
	sender := &fakeSender{failures: 0}
	uc := NewSendSaleUseCase(sender, &fakePendingRepo{}, &fakeAuditRepo{}, 3, nil)

	_, err := uc.Execute(context.Background(), json.RawMessage(`{"id":"venda-9","total":10}`))
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(sender.sent[0], &sent))
	assert.JSONEq(t, `"venda-9"`, string(sent["idempotency_key"]))
}

func TestSendSale_KeepsExistingIdempotencyKey(t *testing.T) {
	sender := &fakeSender{failures: 0}
	uc := NewSendSaleUseCase(sender, &fakePendingRepo{}, &fakeAuditRepo{}, 3, nil)

	payload := json.RawMessage(`{"id":"venda-9","idempotency_key":"fixa"}`)
	_, err := uc.Execute(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.JSONEq(t, string(payload), string(sender.sent[0]))
}
