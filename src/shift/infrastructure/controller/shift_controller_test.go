package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/application/usecase"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
)

type memShiftRepo struct {
	open map[uuid.UUID]*entity.Shift
}

func (m *memShiftRepo) Create(_ context.Context, shift *entity.Shift) error {
	m.open[shift.WorkerID] = shift
	return nil
}

func (m *memShiftRepo) FindOpenByWorker(_ context.Context, workerID uuid.UUID) (*entity.Shift, error) {
	return m.open[workerID], nil
}

func (m *memShiftRepo) Close(_ context.Context, shiftID uuid.UUID, _ time.Time) error {
	for workerID, shift := range m.open {
		if shift.ID == shiftID {
			delete(m.open, workerID)
			return nil
		}
	}
	return entity.ErrNoOpenShift
}

type memSaleRepo struct {
	sales []entity.Sale
}

func (m *memSaleRepo) ListByWorkerBetween(_ context.Context, workerID uuid.UUID, _, _ time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range m.sales {
		if s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memClosureRepo struct {
	closures []*entity.ShiftClosure
}

func (m *memClosureRepo) Create(_ context.Context, closure *entity.ShiftClosure) error {
	m.closures = append(m.closures, closure)
	return nil
}

func (m *memClosureRepo) ListByWorker(_ context.Context, _ uuid.UUID, _ int) ([]*entity.ShiftClosure, error) {
	return m.closures, nil
}

func newShiftRouter(saleRepo *memSaleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	shiftRepo := &memShiftRepo{open: make(map[uuid.UUID]*entity.Shift)}
	closureRepo := &memClosureRepo{}

	ctrl := NewShiftController(
		usecase.NewOpenShiftUseCase(shiftRepo),
		usecase.NewCloseShiftUseCase(shiftRepo, saleRepo, closureRepo, nil),
		usecase.NewListClosuresUseCase(closureRepo),
	)

	router := gin.New()
	ctrl.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(router *gin.Engine, method, path, workerID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if workerID != "" {
		req.Header.Set("X-Funcionario-ID", workerID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestShiftController_WorkerHeaderValidation(t *testing.T) {
	router := newShiftRouter(&memSaleRepo{})

	w := doRequest(router, http.MethodPost, "/api/v1/turnos/abrir", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/turnos/abrir", "nao-e-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShiftController_OpenCloseFlow(t *testing.T) {
	workerID := uuid.New()
	saleRepo := &memSaleRepo{}
	router := newShiftRouter(saleRepo)

	// Abre o turno
	w := doRequest(router, http.MethodPost, "/api/v1/turnos/abrir", workerID.String())
	require.Equal(t, http.StatusCreated, w.Code)

	// Segundo abrir conflita
	w = doRequest(router, http.MethodPost, "/api/v1/turnos/abrir", workerID.String())
	assert.Equal(t, http.StatusConflict, w.Code)

	// Fechar sem vendas conflita e o turno segue aberto
	w = doRequest(router, http.MethodPost, "/api/v1/turnos/fechar", workerID.String())
	assert.Equal(t, http.StatusConflict, w.Code)

	// Com vendas o fechamento sai
	saleRepo.sales = []entity.Sale{
		{ID: uuid.New(), WorkerID: workerID, Total: decimal.NewFromFloat(45.50), PaymentMethod: "pix", CreatedAt: time.Now()},
	}
	w = doRequest(router, http.MethodPost, "/api/v1/turnos/fechar", workerID.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_vendas":1`)

	// Fechar de novo: não há mais turno aberto
	w = doRequest(router, http.MethodPost, "/api/v1/turnos/fechar", workerID.String())
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Fechamento aparece na listagem
	w = doRequest(router, http.MethodGet, "/api/v1/turnos/fechamentos", workerID.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
