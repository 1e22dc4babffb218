package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shift representa o período de trabalho de um funcionário no caixa,
// delimitado por uma abertura e um fechamento explícitos.
type Shift struct {
	ID       uuid.UUID  `json:"id"`
	WorkerID uuid.UUID  `json:"funcionario_id"`
	OpenedAt time.Time  `json:"aberto_em"`
	ClosedAt *time.Time `json:"fechado_em"` // NULL = turno aberto
}

// NewShift abre um turno para o funcionário.
func NewShift(workerID uuid.UUID) *Shift {
	return &Shift{
		ID:       uuid.New(),
		WorkerID: workerID,
		OpenedAt: time.Now(),
	}
}

// IsOpen indica se o turno ainda está aberto.
func (s *Shift) IsOpen() bool {
	return s.ClosedAt == nil
}
