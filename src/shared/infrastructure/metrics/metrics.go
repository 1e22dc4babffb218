package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics contadores Prometheus da fila de sincronização com o Linx.
// Registrados no registry default e expostos em /metrics quando habilitado.
type SyncMetrics struct {
	Delivered        prometheus.Counter
	Retries          prometheus.Counter
	TerminalFailures prometheus.Counter
	InboundItems     *prometheus.CounterVec
}

// NewSyncMetrics registra e devolve os contadores da fila de sync.
func NewSyncMetrics() *SyncMetrics {
	return &SyncMetrics{
		Delivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rodoil_sync_delivered_total",
			Help: "Vendas entregues ao Linx (imediatas ou via retry).",
		}),
		Retries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rodoil_sync_retries_total",
			Help: "Tentativas de reenvio que falharam e voltaram para a fila.",
		}),
		TerminalFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rodoil_sync_terminal_failures_total",
			Help: "Pendências descartadas após esgotar o teto de tentativas.",
		}),
		InboundItems: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rodoil_sync_inbound_items_total",
			Help: "Itens recebidos do Linx por status de processamento.",
		}, []string{"status"}),
	}
}

// Métodos tolerantes a nil: os casos de uso recebem *SyncMetrics opcional
// (nil em testes) e incrementam sem checagem no ponto de uso.

func (m *SyncMetrics) IncDelivered() {
	if m != nil {
		m.Delivered.Inc()
	}
}

func (m *SyncMetrics) IncRetries() {
	if m != nil {
		m.Retries.Inc()
	}
}

func (m *SyncMetrics) IncTerminalFailures() {
	if m != nil {
		m.TerminalFailures.Inc()
	}
}

func (m *SyncMetrics) IncInboundItem(status string) {
	if m != nil {
		m.InboundItems.WithLabelValues(status).Inc()
	}
}
