package rewarder

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
)

type Distributor interface {
	EnsureCurrentPeriod(ctx context.Context, now time.Time) (*domain.WeeklyPeriod, error)
	DistributePending(ctx context.Context, now time.Time) (int, error)
}

// Service sweeps closed weekly windows in the background: it keeps the
// current period row present and pays out every window whose week ended.
type Service struct {
	weekly   Distributor
	interval time.Duration
}

func New(weekly Distributor, interval time.Duration) *Service {
	return &Service{weekly: weekly, interval: interval}
}

// Start runs the sweep on the configured interval until ctx is cancelled.
// The first run fires immediately so a restart never delays a due payout by
// a full interval.
func (s *Service) Start(ctx context.Context) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		zap.L().Error("can't build reward scheduler", zap.Error(err))
		return
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.sweep(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		zap.L().Error("can't schedule reward sweep", zap.Error(err))
		return
	}

	sched.Start()
	zap.L().Info("reward distributor started", zap.Duration("interval", s.interval))

	<-ctx.Done()
	if err := sched.Shutdown(); err != nil {
		zap.L().Error("reward scheduler shutdown failed", zap.Error(err))
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := time.Now()
	if _, err := s.weekly.EnsureCurrentPeriod(ctx, now); err != nil {
		zap.L().Error("can't ensure current weekly period", zap.Error(err))
		return
	}

	closed, err := s.weekly.DistributePending(ctx, now)
	if err != nil {
		zap.L().Error("weekly distribution sweep failed", zap.Error(err))
		return
	}
	if closed > 0 {
		zap.L().Info("weekly periods distributed", zap.Int("count", closed))
	}
}
