package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// SessionSweeper periodically clears refresh tokens whose stored expiry has
// passed. Expired tokens are already rejected on refresh; sweeping only keeps
// the store tidy.
type SessionSweeper struct {
	cleaner  store.ExpiredSessionCleaner
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(cleaner store.ExpiredSessionCleaner, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		cleaner:  cleaner,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass and returns the number of cleared sessions.
// Failures are retried on the next tick; transient ones, as classified by a
// cleaner that is also a [store.ErrorClassificator], are logged as warnings.
func (s *SessionSweeper) Sweep(ctx context.Context) int64 {
	cleared, err := s.cleaner.ClearExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		if c, ok := s.cleaner.(store.ErrorClassificator); ok && c.Classify(err) == store.Retryable {
			s.logger.Warn().Err(err).Msg("transient error clearing expired sessions")
			return 0
		}
		s.logger.Err(err).Msg("error clearing expired sessions")
		return 0
	}

	if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("expired sessions cleared")
	}
	return cleared
}
