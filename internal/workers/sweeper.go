package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
)

type sessionSweeper struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper returns a worker that closes idle sessions every
// interval. Sweep errors are logged and the worker keeps going.
func NewSessionSweeper(sessions service.SessionService, interval time.Duration, log *logger.Logger) Worker {
	return &sessionSweeper{sessions: sessions, interval: interval, logger: log}
}

func (s *sessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	n, err := s.sessions.Sweep(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSweeper.sweep").Msg("error sweeping idle sessions")
		return
	}
	if n > 0 {
		s.logger.Info().Int("closed", n).Msg("idle sessions closed")
	}
}
