package weeklyrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const periodColumns = `id, week_start, week_end, total_rewards_pool, total_matches, is_distributed, distributed_at`

// GetOrCreatePeriod returns the period anchored at weekStart, creating it on
// first sight. week_start is unique, so a concurrent create loses the insert
// and falls through to the select.
func (r *Repository) GetOrCreatePeriod(ctx context.Context, weekStart, weekEnd time.Time) (*domain.WeeklyPeriod, error) {
	insert := `
        INSERT INTO weekly_periods (id, week_start, week_end)
        VALUES ($1, $2, $3)
        ON CONFLICT (week_start) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, insert, uuid.NewString(), weekStart, weekEnd); err != nil {
		zap.L().Error("can't create weekly period", zap.Error(err))
		return nil, err
	}

	query := `
        SELECT ` + periodColumns + `
        FROM weekly_periods
        WHERE week_start = $1
    `
	row := r.db.QueryRow(ctx, query, weekStart)
	return scanPeriod(row)
}

func (r *Repository) FindPeriodByID(ctx context.Context, id string) (*domain.WeeklyPeriod, error) {
	query := `
        SELECT ` + periodColumns + `
        FROM weekly_periods
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	period, err := scanPeriod(row)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return period, err
}

// FindPending returns undistributed periods whose window closed before the
// given instant, oldest first.
func (r *Repository) FindPending(ctx context.Context, before time.Time) ([]domain.WeeklyPeriod, error) {
	query := `
        SELECT ` + periodColumns + `
        FROM weekly_periods
        WHERE is_distributed = FALSE AND week_end <= $1
        ORDER BY week_start ASC
    `
	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		zap.L().Error("can't get pending weekly periods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var periods []domain.WeeklyPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			zap.L().Error("can't scan weekly period row", zap.Error(err))
			return nil, err
		}
		periods = append(periods, *period)
	}
	return periods, nil
}

func (r *Repository) MarkDistributed(ctx context.Context, id string, pool int64, matches int, at time.Time) (bool, error) {
	query := `
        UPDATE weekly_periods
        SET is_distributed = TRUE, distributed_at = $1, total_rewards_pool = $2, total_matches = $3
        WHERE id = $4 AND is_distributed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, at, pool, matches, id)
	if err != nil {
		zap.L().Error("can't mark weekly period distributed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SaveReward(ctx context.Context, reward *domain.WeeklyReward) error {
	query := `
        INSERT INTO weekly_rewards (id, weekly_period_id, user_id, rank, points, reward_amount, is_claimed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		reward.ID, reward.WeeklyPeriodID, reward.UserID, reward.Rank,
		reward.Points, reward.RewardAmount, reward.IsClaimed, reward.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save weekly reward", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindRewardByID(ctx context.Context, id string) (*domain.WeeklyReward, error) {
	query := `
        SELECT id, weekly_period_id, user_id, rank, points, reward_amount, is_claimed, created_at
        FROM weekly_rewards
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var reward domain.WeeklyReward
	err := row.Scan(&reward.ID, &reward.WeeklyPeriodID, &reward.UserID, &reward.Rank,
		&reward.Points, &reward.RewardAmount, &reward.IsClaimed, &reward.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find weekly reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) FindRewardsByUser(ctx context.Context, userID string) ([]domain.WeeklyReward, error) {
	query := `
        SELECT id, weekly_period_id, user_id, rank, points, reward_amount, is_claimed, created_at
        FROM weekly_rewards
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get weekly rewards for user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.WeeklyReward
	for rows.Next() {
		var reward domain.WeeklyReward
		err := rows.Scan(&reward.ID, &reward.WeeklyPeriodID, &reward.UserID, &reward.Rank,
			&reward.Points, &reward.RewardAmount, &reward.IsClaimed, &reward.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan weekly reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

func (r *Repository) MarkClaimed(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE weekly_rewards
        SET is_claimed = TRUE
        WHERE id = $1 AND is_claimed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark weekly reward claimed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPeriod(row rowScanner) (*domain.WeeklyPeriod, error) {
	var period domain.WeeklyPeriod
	err := row.Scan(&period.ID, &period.WeekStart, &period.WeekEnd, &period.TotalRewardsPool,
		&period.TotalMatches, &period.IsDistributed, &period.DistributedAt)
	if err != nil {
		return nil, err
	}
	return &period, nil
}
