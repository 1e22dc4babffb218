package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/request"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/usecase"
)

// SyncController maneja as requisições HTTP do bridge Linx
type SyncController struct {
	sendSaleUC     *usecase.SendSaleUseCase
	inboundBatchUC *usecase.InboundBatchUseCase
	syncStatusUC   *usecase.SyncStatusUseCase
}

// NewSyncController cria uma nova instância do controlador
func NewSyncController(
	sendSaleUC *usecase.SendSaleUseCase,
	inboundBatchUC *usecase.InboundBatchUseCase,
	syncStatusUC *usecase.SyncStatusUseCase,
) *SyncController {
	return &SyncController{
		sendSaleUC:     sendSaleUC,
		inboundBatchUC: inboundBatchUC,
		syncStatusUC:   syncStatusUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *SyncController) RegisterRoutes(router *gin.RouterGroup) {
	sync := router.Group("/sync")
	{
		sync.POST("/vendas", c.InboundBatch)
		sync.POST("/vendas/enviar", c.SendSale)
		sync.GET("/status", c.Status)
	}

	log.Println("Rotas Sync disponíveis:")
	log.Println("  POST   /api/v1/sync/vendas          (Linx → estoque local)")
	log.Println("  POST   /api/v1/sync/vendas/enviar   (venda local → Linx)")
	log.Println("  GET    /api/v1/sync/status")
}

// SendSale envio imediato de uma venda local ao Linx; em falha o
// payload entra na fila de pendências.
func (c *SyncController) SendSale(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "payload de venda ausente",
		})
		return
	}
	if !json.Valid(payload) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "payload de venda inválido",
		})
		return
	}

	status, err := c.sendSaleUC.Execute(ctx.Request.Context(), payload)
	if err != nil {
		log.Printf("Error sending sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  status,
	})
}

// InboundBatch recebe um lote de itens vendidos no Linx e dá baixa
// no estoque local. Linha com problema não derruba o lote: a
// resposta carrega um resultado por linha.
func (c *SyncController) InboundBatch(ctx *gin.Context) {
	var req request.InboundBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "payload inválido: " + err.Error(),
		})
		return
	}

	resp, err := c.inboundBatchUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyBatch) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		log.Printf("Error processing inbound batch: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Status consulta operacional da fila de sincronização.
func (c *SyncController) Status(ctx *gin.Context) {
	resp, err := c.syncStatusUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error reading sync status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
