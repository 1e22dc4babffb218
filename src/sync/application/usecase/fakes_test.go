package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inventoryEntity "github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/entity"
	inventoryPort "github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/port"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/domain/entity"
)

// fakeSender falha os primeiros `failures` envios (-1 = sempre falha).
type fakeSender struct {
	failures int
	calls    int
	sent     []json.RawMessage
}

func (f *fakeSender) Send(_ context.Context, payload json.RawMessage) error {
	f.calls++
	f.sent = append(f.sent, payload)
	if f.failures < 0 || f.calls <= f.failures {
		return errors.New("linx unreachable")
	}
	return nil
}

// fakePendingRepo fila em memória preservando ordem de criação.
type fakePendingRepo struct {
	items []*entity.PendingSyncItem
}

func (f *fakePendingRepo) Create(_ context.Context, item *entity.PendingSyncItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakePendingRepo) Update(_ context.Context, item *entity.PendingSyncItem) error {
	for i, existing := range f.items {
		if existing.ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	return errors.New("item not found")
}

func (f *fakePendingRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range f.items {
		if existing.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("item not found")
}

func (f *fakePendingRepo) ListEligible(_ context.Context, now time.Time) ([]*entity.PendingSyncItem, error) {
	var eligible []*entity.PendingSyncItem
	for _, item := range f.items {
		if item.Eligible(now) {
			eligible = append(eligible, item)
		}
	}
	return eligible, nil
}

func (f *fakePendingRepo) Stats(_ context.Context) (int, *time.Time, error) {
	if len(f.items) == 0 {
		return 0, nil, nil
	}
	oldest := f.items[0].CreatedAt
	for _, item := range f.items {
		if item.CreatedAt.Before(oldest) {
			oldest = item.CreatedAt
		}
	}
	return len(f.items), &oldest, nil
}

// fakeAuditRepo ledger em memória.
type fakeAuditRepo struct {
	records []*entity.SyncAuditRecord
}

func (f *fakeAuditRepo) Create(_ context.Context, record *entity.SyncAuditRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeAuditRepo) byStatus(status string) []*entity.SyncAuditRecord {
	var out []*entity.SyncAuditRecord
	for _, r := range f.records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// saleCall registro de uma baixa de estoque no fake.
type saleCall struct {
	barcode  string
	quantity decimal.Decimal
	source   string
}

// fakeProductRepo catálogo em memória com falha injetável.
type fakeProductRepo struct {
	products    map[string]*inventoryEntity.Product
	failBarcode string // RegisterSale falha para este código
	sales       []saleCall
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*inventoryEntity.Product)}
}

func (f *fakeProductRepo) add(barcode string, quantity float64) {
	f.products[barcode] = &inventoryEntity.Product{
		ID:       uuid.New(),
		Barcode:  barcode,
		Name:     "Produto " + barcode,
		Quantity: decimal.NewFromFloat(quantity),
	}
}

func (f *fakeProductRepo) FindByBarcode(_ context.Context, barcode string) (*inventoryEntity.Product, error) {
	product, ok := f.products[barcode]
	if !ok {
		return nil, inventoryPort.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) RegisterSale(_ context.Context, product *inventoryEntity.Product, quantity decimal.Decimal, source string) error {
	if product.Barcode == f.failBarcode {
		return errors.New("db connection lost")
	}
	product.Quantity = product.Quantity.Sub(quantity)
	f.sales = append(f.sales, saleCall{barcode: product.Barcode, quantity: quantity, source: source})
	return nil
}

func (f *fakeProductRepo) ListMovements(_ context.Context, _ string, _ int) ([]inventoryEntity.StockMovement, error) {
	return nil, nil
}
