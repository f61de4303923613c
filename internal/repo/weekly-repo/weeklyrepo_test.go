package weeklyrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrps/arena/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var periodCols = []string{
	"id", "week_start", "week_end", "total_rewards_pool", "total_matches", "is_distributed", "distributed_at",
}

func TestRepository_GetOrCreatePeriod(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO weekly_periods")).
		WithArgs(pgxmock.AnyArg(), start, end).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	rows := pgxmock.NewRows(periodCols).
		AddRow("period-1", start, end, int64(0), 0, false, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE week_start = $1")).
		WithArgs(start).
		WillReturnRows(rows)

	period, err := repo.GetOrCreatePeriod(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, "period-1", period.ID)
	assert.False(t, period.IsDistributed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 8)

	rows := pgxmock.NewRows(periodCols).
		AddRow("period-1", start, start.AddDate(0, 0, 7), int64(0), 0, false, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_distributed = FALSE AND week_end <= $1")).
		WithArgs(now).
		WillReturnRows(rows)

	periods, err := repo.FindPending(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "period-1", periods[0].ID)
}

func TestRepository_MarkDistributed(t *testing.T) {
	at := time.Now()

	t.Run("First close wins", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET is_distributed = TRUE")).
			WithArgs(at, int64(240), 8, "period-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkDistributed(context.Background(), "period-1", 240, 8, at)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Second close loses", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET is_distributed = TRUE")).
			WithArgs(at, int64(240), 8, "period-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkDistributed(context.Background(), "period-1", 240, 8, at)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_SaveReward(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	reward := &domain.WeeklyReward{
		ID:             "reward-1",
		WeeklyPeriodID: "period-1",
		UserID:         "alice",
		Rank:           1,
		Points:         123,
		RewardAmount:   120,
		CreatedAt:      now,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO weekly_rewards")).
		WithArgs("reward-1", "period-1", "alice", 1, int64(123), int64(120), false, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.SaveReward(context.Background(), reward))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindRewardByID(t *testing.T) {
	now := time.Now()
	rewardCols := []string{"id", "weekly_period_id", "user_id", "rank", "points", "reward_amount", "is_claimed", "created_at"}

	t.Run("Reward exists", func(t *testing.T) {
		repo, mock := NewMock(t)
		rows := pgxmock.NewRows(rewardCols).
			AddRow("reward-1", "period-1", "alice", 1, int64(123), int64(120), false, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM weekly_rewards")).
			WithArgs("reward-1").
			WillReturnRows(rows)

		reward, err := repo.FindRewardByID(context.Background(), "reward-1")
		require.NoError(t, err)
		require.NotNil(t, reward)
		assert.Equal(t, int64(120), reward.RewardAmount)
	})

	t.Run("Reward missing", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM weekly_rewards")).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		reward, err := repo.FindRewardByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, reward)
	})
}

func TestRepository_MarkClaimed(t *testing.T) {
	t.Run("Unclaimed reward flips", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET is_claimed = TRUE")).
			WithArgs("reward-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkClaimed(context.Background(), "reward-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Double claim refused", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET is_claimed = TRUE")).
			WithArgs("reward-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkClaimed(context.Background(), "reward-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
