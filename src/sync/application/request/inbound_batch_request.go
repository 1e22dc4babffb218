package request

import "github.com/shopspring/decimal"

// InboundItem linha de venda recebida do Linx.
type InboundItem struct {
	CodigoBarras string          `json:"codigo_barras"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	NomeProduto  string          `json:"nome_produto"`
}

// InboundBatchRequest lote de itens vendidos enviado pelo Linx.
// Items ausente ou vazio é payload malformado: o lote inteiro é
// rejeitado antes de qualquer processamento.
type InboundBatchRequest struct {
	Items  []InboundItem `json:"items"`
	Source string        `json:"source"`
}
