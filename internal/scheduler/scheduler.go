package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type classRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Scheduler keeps the class cache warm between user requests.
type Scheduler struct {
	classService classRefresher
	interval     time.Duration
	logger       logger.Logger
}

func New(
	classService classRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		classService: classService,
		interval:     interval,
		logger:       logger,
	}
}

// Start refreshes once immediately, then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	started := time.Now()
	n, err := s.classService.Refresh(ctx)
	if err != nil {
		s.logger.Error("failed to refresh class cache",
			logger.Int("refreshed", n),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("class cache refreshed",
		logger.Int("refreshed", n),
		logger.Duration("took", time.Since(started)),
	)
}
