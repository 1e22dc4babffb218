package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/11mayycon/rodil-stock-flow-sub000/src/sync/application/usecase"
)

// Sweeper executa uma passada da varredura de pendências.
type Sweeper interface {
	RunOnce(ctx context.Context) (usecase.SweepResult, error)
}

// SweepScheduler job periódico cancelável que dispara a varredura a
// cada intervalo. Substitui o timer fire-and-forget: o main é dono do
// ciclo de vida e os testes invocam RunOnce diretamente no caso de uso.
type SweepScheduler struct {
	sweeper  Sweeper
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSweepScheduler cria um agendador parado.
func NewSweepScheduler(sweeper Sweeper, interval time.Duration) *SweepScheduler {
	return &SweepScheduler{
		sweeper:  sweeper,
		interval: interval,
	}
}

// Start dispara o loop em background. Idempotente não é: chamar duas
// vezes sem Stop cria dois loops.
func (s *SweepScheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		log.Printf("🔁 Varredura de sync agendada a cada %s", s.interval)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.sweeper.RunOnce(ctx); err != nil {
					log.Printf("ERRO: varredura de sync falhou: %v", err)
				}
			}
		}
	}()
}

// Stop cancela o loop e espera a passada corrente terminar.
func (s *SweepScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
