package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/application/usecase"
	"github.com/11mayycon/rodil-stock-flow-sub000/src/shift/domain/entity"
)

// ShiftController maneja as requisições HTTP de turnos
type ShiftController struct {
	openShiftUC    *usecase.OpenShiftUseCase
	closeShiftUC   *usecase.CloseShiftUseCase
	listClosuresUC *usecase.ListClosuresUseCase
}

// NewShiftController cria uma nova instância do controlador
func NewShiftController(
	openShiftUC *usecase.OpenShiftUseCase,
	closeShiftUC *usecase.CloseShiftUseCase,
	listClosuresUC *usecase.ListClosuresUseCase,
) *ShiftController {
	return &ShiftController{
		openShiftUC:    openShiftUC,
		closeShiftUC:   closeShiftUC,
		listClosuresUC: listClosuresUC,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *ShiftController) RegisterRoutes(router *gin.RouterGroup) {
	turnos := router.Group("/turnos")
	{
		turnos.POST("/abrir", c.OpenShift)
		turnos.POST("/fechar", c.CloseShift)
		turnos.GET("/fechamentos", c.ListClosures)
	}

	log.Println("Rotas Turno disponíveis:")
	log.Println("  POST   /api/v1/turnos/abrir")
	log.Println("  POST   /api/v1/turnos/fechar")
	log.Println("  GET    /api/v1/turnos/fechamentos")
}

// workerID extrai e valida o header X-Funcionario-ID.
func (c *ShiftController) workerID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.GetHeader("X-Funcionario-ID")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Funcionario-ID header is required",
		})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid X-Funcionario-ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// OpenShift abre um turno para o funcionário.
func (c *ShiftController) OpenShift(ctx *gin.Context) {
	workerID, ok := c.workerID(ctx)
	if !ok {
		return
	}

	shift, err := c.openShiftUC.Execute(ctx.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, entity.ErrShiftAlreadyOpen) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error opening shift: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusCreated, shift)
}

// CloseShift fecha o turno aberto do funcionário e devolve o
// fechamento calculado.
func (c *ShiftController) CloseShift(ctx *gin.Context) {
	workerID, ok := c.workerID(ctx)
	if !ok {
		return
	}

	resp, err := c.closeShiftUC.Execute(ctx.Request.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoOpenShift):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrNoSalesInShift):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Error closing shift: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListClosures lista os fechamentos do funcionário.
func (c *ShiftController) ListClosures(ctx *gin.Context) {
	workerID, ok := c.workerID(ctx)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "30"))

	closures, err := c.listClosuresUC.Execute(ctx.Request.Context(), workerID, limit)
	if err != nil {
		log.Printf("Error listing closures: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"fechamentos": closures,
		"total":       len(closures),
	})
}
