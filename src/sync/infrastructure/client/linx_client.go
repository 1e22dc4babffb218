package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LinxClient cliente HTTP para o endpoint de vendas do POS Linx.
// Qualquer resposta 2xx conta como entrega; todo o resto (erro de
// rede, timeout, status fora de 2xx) é falha e alimenta o retry.
type LinxClient struct {
	httpClient *http.Client
	baseURL    string
	salePath   string
}

// NewLinxClient cria uma nova instância do cliente. baseURL e
// salePath vêm da configuração; timeout limita cada tentativa.
func NewLinxClient(baseURL, salePath string, timeout time.Duration) *LinxClient {
	return &LinxClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  baseURL,
		salePath: salePath,
	}
}

// Send envia o payload da venda por POST.
func (c *LinxClient) Send(ctx context.Context, payload json.RawMessage) error {
	url := c.baseURL + c.salePath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending sale to linx: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("linx returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
