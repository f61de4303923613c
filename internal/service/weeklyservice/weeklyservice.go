package weeklyservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
	"github.com/solrps/arena/pkg/game"
)

type WeeklyRepo interface {
	GetOrCreatePeriod(ctx context.Context, weekStart, weekEnd time.Time) (*domain.WeeklyPeriod, error)
	FindPeriodByID(ctx context.Context, id string) (*domain.WeeklyPeriod, error)
	FindPending(ctx context.Context, before time.Time) ([]domain.WeeklyPeriod, error)
	MarkDistributed(ctx context.Context, id string, pool int64, matches int, at time.Time) (bool, error)
	SaveReward(ctx context.Context, reward *domain.WeeklyReward) error
	FindRewardByID(ctx context.Context, id string) (*domain.WeeklyReward, error)
	FindRewardsByUser(ctx context.Context, userID string) ([]domain.WeeklyReward, error)
	MarkClaimed(ctx context.Context, id string) (bool, error)
}

type ResultRepo interface {
	FindByWindow(ctx context.Context, from, to time.Time) ([]domain.SettledMatch, error)
}

type UserRepo interface {
	IncrementBalance(ctx context.Context, userID string, delta int64) (bool, error)
}

var (
	ErrPeriodNotFound       = errors.New("weekly period not found")
	ErrRewardNotFound       = errors.New("weekly reward not found")
	ErrRewardNotOwned       = errors.New("reward belongs to another user")
	ErrRewardAlreadyClaimed = errors.New("reward already claimed")
)

// Eligibility thresholds for the weekly board. Wins concentrated on a few
// counterparties are treated as farming and excluded from the payout ranks.
const (
	minTotalWins       = 5
	minUniqueOpponents = 5
	maxWinShareSingle  = 0.25
)

type Service struct {
	weeklyRepo WeeklyRepo
	resultRepo ResultRepo
	userRepo   UserRepo
	txManager  pg.TXManager
}

func New(weeklyRepo WeeklyRepo, resultRepo ResultRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		weeklyRepo: weeklyRepo,
		resultRepo: resultRepo,
		userRepo:   userRepo,
		txManager:  txManager,
	}
}

// WeekStart truncates t to the Monday 00:00 UTC that opens its week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := t.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd is the exclusive end of the week opened at start.
func WeekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 7)
}

// Standing is one row of a weekly leaderboard. Every participant of a settled
// match gets a row; points accrue only from wins, a flat award per win plus a
// payout-proportional bonus.
type Standing struct {
	UserID        string `json:"userId"`
	Rank          int    `json:"rank"`
	Points        int64  `json:"points"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matchesPlayed"`
	TotalPayout   int64  `json:"totalPayout"`
	Eligible      bool   `json:"eligible"`
}

type userStats struct {
	wins           int
	matchesPlayed  int
	totalPayout    int64
	winsByOpponent map[string]int
}

// buildStandings folds a window of settled matches into ranked standings.
// Both sides of every match count as played; draws and losses add no points.
func buildStandings(matches []domain.SettledMatch) []Standing {
	stats := make(map[string]*userStats)
	get := func(userID string) *userStats {
		st, ok := stats[userID]
		if !ok {
			st = &userStats{winsByOpponent: make(map[string]int)}
			stats[userID] = st
		}
		return st
	}
	for _, m := range matches {
		get(m.CreatorID).matchesPlayed++
		get(m.ChallengerID).matchesPlayed++
		if m.WinnerUserID == "" {
			continue
		}
		opponent := m.CreatorID
		if m.WinnerUserID == m.CreatorID {
			opponent = m.ChallengerID
		}
		st := get(m.WinnerUserID)
		st.wins++
		st.totalPayout += m.PayoutWinner
		st.winsByOpponent[opponent]++
	}

	standings := make([]Standing, 0, len(stats))
	for userID, st := range stats {
		maxFromOne := 0
		for _, n := range st.winsByOpponent {
			if n > maxFromOne {
				maxFromOne = n
			}
		}
		eligible := st.wins >= minTotalWins &&
			len(st.winsByOpponent) >= minUniqueOpponents &&
			float64(maxFromOne)/float64(st.wins) <= maxWinShareSingle
		standings = append(standings, Standing{
			UserID:        userID,
			Points:        int64(st.wins)*10 + st.totalPayout/100,
			Wins:          st.wins,
			MatchesPlayed: st.matchesPlayed,
			TotalPayout:   st.totalPayout,
			Eligible:      eligible,
		})
	}

	// Point ties break by total winnings, so equal scores with unequal
	// payouts still rank deterministically in the payer's favor.
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		if standings[i].TotalPayout != standings[j].TotalPayout {
			return standings[i].TotalPayout > standings[j].TotalPayout
		}
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].UserID < standings[j].UserID
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Leaderboard returns the live standings of the week containing at. For a
// closed week it reproduces exactly what distribution saw.
func (s *Service) Leaderboard(ctx context.Context, at time.Time) ([]Standing, *domain.WeeklyPeriod, error) {
	start := WeekStart(at)
	period, err := s.weeklyRepo.GetOrCreatePeriod(ctx, start, WeekEnd(start))
	if err != nil {
		return nil, nil, err
	}
	matches, err := s.resultRepo.FindByWindow(ctx, period.WeekStart, period.WeekEnd)
	if err != nil {
		return nil, nil, err
	}
	return buildStandings(matches), period, nil
}

// EnsureCurrentPeriod makes sure the week containing now has a period row, so
// the distribution sweep always finds a window to close later.
func (s *Service) EnsureCurrentPeriod(ctx context.Context, now time.Time) (*domain.WeeklyPeriod, error) {
	start := WeekStart(now)
	return s.weeklyRepo.GetOrCreatePeriod(ctx, start, WeekEnd(start))
}

// DistributePending closes every period whose week has ended: it derives the
// reward pool from the treasury fees collected inside the window, ranks the
// eligible winners and books top-10 rewards. Periods close in independent
// transactions, so the sweep fans out; the conditional MarkDistributed keeps
// it idempotent under concurrent runs.
func (s *Service) DistributePending(ctx context.Context, now time.Time) (int, error) {
	pending, err := s.weeklyRepo.FindPending(ctx, now)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range pending {
		period := pending[i]
		g.Go(func() error {
			return s.distributePeriod(gctx, &period)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (s *Service) distributePeriod(ctx context.Context, period *domain.WeeklyPeriod) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.weeklyRepo.FindPeriodByID(ctx, period.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrPeriodNotFound
		}
		if current.IsDistributed {
			return nil
		}

		matches, err := s.resultRepo.FindByWindow(ctx, current.WeekStart, current.WeekEnd)
		if err != nil {
			return err
		}

		var pool int64
		for _, m := range matches {
			pool += m.FeesTreasury
		}

		ok, err := s.weeklyRepo.MarkDistributed(ctx, current.ID, pool, len(matches), time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		var winners []Standing
		for _, st := range buildStandings(matches) {
			if st.Eligible {
				winners = append(winners, st)
			}
		}
		amounts := game.CalcWeeklyDistribution(pool)
		for i, st := range winners {
			if i >= len(amounts) {
				break
			}
			if amounts[i] == 0 {
				continue
			}
			reward := &domain.WeeklyReward{
				ID:             uuid.NewString(),
				WeeklyPeriodID: current.ID,
				UserID:         st.UserID,
				Rank:           i + 1,
				Points:         st.Points,
				RewardAmount:   amounts[i],
				CreatedAt:      time.Now(),
			}
			if err := s.weeklyRepo.SaveReward(ctx, reward); err != nil {
				return err
			}
		}

		zap.L().Info("weekly period distributed",
			zap.String("period_id", current.ID),
			zap.Int64("pool", pool),
			zap.Int("matches", len(matches)),
			zap.Int("rewards", len(winners)))
		return nil
	})
}

// ClaimReward credits a booked reward to its owner's balance, once.
func (s *Service) ClaimReward(ctx context.Context, rewardID, callerID string) (*domain.WeeklyReward, error) {
	var claimed *domain.WeeklyReward
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reward, err := s.weeklyRepo.FindRewardByID(ctx, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return ErrRewardNotFound
		}
		if reward.UserID != callerID {
			return ErrRewardNotOwned
		}
		if reward.IsClaimed {
			return ErrRewardAlreadyClaimed
		}

		ok, err := s.weeklyRepo.MarkClaimed(ctx, rewardID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRewardAlreadyClaimed
		}
		if _, err := s.userRepo.IncrementBalance(ctx, reward.UserID, reward.RewardAmount); err != nil {
			return err
		}
		reward.IsClaimed = true
		claimed = reward
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("weekly reward claimed",
		zap.String("reward_id", rewardID),
		zap.String("user_id", callerID),
		zap.Int64("amount", claimed.RewardAmount))
	return claimed, nil
}

func (s *Service) ListRewards(ctx context.Context, userID string) ([]domain.WeeklyReward, error) {
	return s.weeklyRepo.FindRewardsByUser(ctx, userID)
}
