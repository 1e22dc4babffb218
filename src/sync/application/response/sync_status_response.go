package response

import "time"

// SyncStatusResponse estado operacional da fila de sincronização.
// Consulta síncrona sem efeitos colaterais.
type SyncStatusResponse struct {
	Pendentes          int        `json:"pendentes"`
	MaisAntigoCriadoEm *time.Time `json:"mais_antigo_criado_em,omitempty"`
	MaxTentativas      int        `json:"max_tentativas"`
	BackoffUnit        string     `json:"backoff_unit"`
	SweepInterval      string     `json:"sweep_interval"`
}
