package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/inventory/domain/port"
)

// ProductController consulta de produtos e do ledger de movimentações
type ProductController struct {
	productRepo port.ProductRepository
}

// NewProductController cria uma nova instância do controlador
func NewProductController(productRepo port.ProductRepository) *ProductController {
	return &ProductController{
		productRepo: productRepo,
	}
}

// RegisterRoutes registra as rotas do controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	produtos := router.Group("/produtos")
	{
		produtos.GET("/:codigo_barras", c.GetProduct)
		produtos.GET("/:codigo_barras/movimentacoes", c.ListMovements)
	}

	log.Println("Rotas Produto disponíveis:")
	log.Println("  GET    /api/v1/produtos/:codigo_barras")
	log.Println("  GET    /api/v1/produtos/:codigo_barras/movimentacoes")
}

// GetProduct consulta um produto pelo código de barras.
func (c *ProductController) GetProduct(ctx *gin.Context) {
	barcode := ctx.Param("codigo_barras")

	product, err := c.productRepo.FindByBarcode(ctx.Request.Context(), barcode)
	if err != nil {
		if errors.Is(err, port.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error fetching product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListMovements lista as movimentações de estoque de um produto.
func (c *ProductController) ListMovements(ctx *gin.Context) {
	barcode := ctx.Param("codigo_barras")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	movements, err := c.productRepo.ListMovements(ctx.Request.Context(), barcode, limit)
	if err != nil {
		log.Printf("Error listing movements: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"movimentacoes": movements,
		"total":         len(movements),
	})
}
