package response

// Status por linha do processamento de um lote recebido do Linx.
const (
	StatusSucesso              = "sucesso"
	StatusErro                 = "erro"
	StatusProdutoNaoEncontrado = "produto_nao_encontrado"
)

// ItemResult desfecho do processamento de uma linha do lote.
type ItemResult struct {
	CodigoBarras string `json:"codigo_barras"`
	Status       string `json:"status"`
	Erro         string `json:"erro,omitempty"`
}

// InboundBatchResponse resposta do lote: sempre um resultado por
// linha de entrada, mesmo quando linhas individuais falham.
type InboundBatchResponse struct {
	Success    bool         `json:"success"`
	Resultados []ItemResult `json:"resultados"`
}
