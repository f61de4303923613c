package weeklyservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWeeklyRepo, *MockResultRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	weeklyRepo := NewMockWeeklyRepo(ctrl)
	resultRepo := NewMockResultRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(weeklyRepo, resultRepo, userRepo, txManager)
	return service, weeklyRepo, resultRepo, userRepo
}

// winsAgainst fabricates matches all won by winner, one per opponent name.
func winsAgainst(winner string, payout, treasury int64, opponents ...string) []domain.SettledMatch {
	matches := make([]domain.SettledMatch, 0, len(opponents))
	for i, opp := range opponents {
		m := domain.SettledMatch{
			MatchResult: domain.MatchResult{
				ID:           fmt.Sprintf("m-%s-%d", winner, i),
				WinnerUserID: winner,
				PayoutWinner: payout,
				FeesTreasury: treasury,
			},
			CreatorID:    winner,
			ChallengerID: opp,
		}
		matches = append(matches, m)
	}
	return matches
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Mid week Wednesday",
			in:   time.Date(2025, 1, 15, 13, 45, 0, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Monday midnight is its own start",
			in:   time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Sunday belongs to the preceding Monday",
			in:   time.Date(2025, 1, 19, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Non UTC input is normalized",
			in:   time.Date(2025, 1, 13, 1, 0, 0, 0, time.FixedZone("plus3", 3*3600)),
			want: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, WeekStart(tt.in).Equal(tt.want))
		})
	}
	assert.True(t, WeekEnd(time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)).
		Equal(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
}

func TestBuildStandings(t *testing.T) {
	t.Run("Points, ordering and ranks", func(t *testing.T) {
		matches := winsAgainst("alice", 540, 30, "o1", "o2", "o3", "o4", "o5", "o6", "o7", "o8")
		matches = append(matches, winsAgainst("bob", 540, 30, "o1", "o2")...)

		standings := buildStandings(matches)
		// Losers get rows too: alice, bob and the eight opponents.
		require.Len(t, standings, 10)

		assert.Equal(t, "alice", standings[0].UserID)
		assert.Equal(t, 1, standings[0].Rank)
		// 8 wins * 10 + floor(8*540/100)
		assert.Equal(t, int64(123), standings[0].Points)
		assert.Equal(t, 8, standings[0].MatchesPlayed)
		assert.True(t, standings[0].Eligible)

		assert.Equal(t, "bob", standings[1].UserID)
		assert.Equal(t, 2, standings[1].Rank)
		assert.False(t, standings[1].Eligible)

		for _, st := range standings[2:] {
			assert.Zero(t, st.Points)
			assert.False(t, st.Eligible)
			if st.UserID == "o1" || st.UserID == "o2" {
				// Lost to both alice and bob.
				assert.Equal(t, 2, st.MatchesPlayed)
			} else {
				assert.Equal(t, 1, st.MatchesPlayed)
			}
		}
	})

	t.Run("Point ties break by total winnings", func(t *testing.T) {
		// Two wins each; 950 and 910 both floor to a 9 point bonus, so the
		// scores tie and only the winnings separate them. The ids are chosen
		// so a lexicographic fallback would invert the order.
		matches := winsAgainst("zzz", 475, 30, "o1", "o2")
		matches = append(matches, winsAgainst("aaa", 455, 30, "o3", "o4")...)

		standings := buildStandings(matches)
		require.Len(t, standings, 6)
		assert.Equal(t, standings[0].Points, standings[1].Points)
		assert.Equal(t, "zzz", standings[0].UserID)
		assert.Equal(t, int64(950), standings[0].TotalPayout)
		assert.Equal(t, "aaa", standings[1].UserID)
	})

	t.Run("Wins concentrated on one opponent are ineligible", func(t *testing.T) {
		// 5 wins over 4 opponents, 2 of them against the same one: 40% share.
		matches := winsAgainst("alice", 540, 30, "o1", "o1", "o2", "o3", "o4")

		standings := buildStandings(matches)
		require.Equal(t, "alice", standings[0].UserID)
		assert.False(t, standings[0].Eligible)
	})

	t.Run("Five wins over five opponents clears the bar", func(t *testing.T) {
		matches := winsAgainst("alice", 540, 30, "o1", "o2", "o3", "o4", "o5")

		standings := buildStandings(matches)
		require.Equal(t, "alice", standings[0].UserID)
		assert.True(t, standings[0].Eligible)
	})

	t.Run("Draws count as played but score nothing", func(t *testing.T) {
		matches := []domain.SettledMatch{
			{MatchResult: domain.MatchResult{ID: "m-draw"}, CreatorID: "alice", ChallengerID: "bob"},
		}
		standings := buildStandings(matches)
		require.Len(t, standings, 2)
		for _, st := range standings {
			assert.Zero(t, st.Points)
			assert.Zero(t, st.Wins)
			assert.Equal(t, 1, st.MatchesPlayed)
			assert.False(t, st.Eligible)
		}
	})
}

func TestDistributePending(t *testing.T) {
	weekStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	period := domain.WeeklyPeriod{
		ID:        "period-1",
		WeekStart: weekStart,
		WeekEnd:   WeekEnd(weekStart),
	}
	now := weekStart.AddDate(0, 0, 8)

	t.Run("Closes period and books top rewards from the treasury pool", func(t *testing.T) {
		service, weeklyRepo, resultRepo, _ := NewMock(t)

		// 8 alice wins at 30 treasury each: pool 240, top rank takes 50%.
		matches := winsAgainst("alice", 540, 30, "o1", "o2", "o3", "o4", "o5", "o6", "o7", "o8")

		weeklyRepo.EXPECT().FindPending(gomock.Any(), now).Return([]domain.WeeklyPeriod{period}, nil)
		weeklyRepo.EXPECT().FindPeriodByID(gomock.Any(), "period-1").Return(&period, nil)
		resultRepo.EXPECT().FindByWindow(gomock.Any(), period.WeekStart, period.WeekEnd).Return(matches, nil)
		weeklyRepo.EXPECT().MarkDistributed(gomock.Any(), "period-1", int64(240), 8, gomock.Any()).Return(true, nil)
		weeklyRepo.EXPECT().SaveReward(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reward *domain.WeeklyReward) error {
				assert.Equal(t, "period-1", reward.WeeklyPeriodID)
				assert.Equal(t, "alice", reward.UserID)
				assert.Equal(t, 1, reward.Rank)
				assert.Equal(t, int64(120), reward.RewardAmount)
				assert.False(t, reward.IsClaimed)
				return nil
			})

		closed, err := service.DistributePending(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, closed)
	})

	t.Run("Already distributed period is skipped", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)

		done := period
		done.IsDistributed = true
		weeklyRepo.EXPECT().FindPending(gomock.Any(), now).Return([]domain.WeeklyPeriod{period}, nil)
		weeklyRepo.EXPECT().FindPeriodByID(gomock.Any(), "period-1").Return(&done, nil)

		closed, err := service.DistributePending(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, closed)
	})

	t.Run("Losing the distribution race books nothing", func(t *testing.T) {
		service, weeklyRepo, resultRepo, _ := NewMock(t)

		weeklyRepo.EXPECT().FindPending(gomock.Any(), now).Return([]domain.WeeklyPeriod{period}, nil)
		weeklyRepo.EXPECT().FindPeriodByID(gomock.Any(), "period-1").Return(&period, nil)
		resultRepo.EXPECT().FindByWindow(gomock.Any(), period.WeekStart, period.WeekEnd).Return(nil, nil)
		weeklyRepo.EXPECT().MarkDistributed(gomock.Any(), "period-1", int64(0), 0, gomock.Any()).Return(false, nil)

		closed, err := service.DistributePending(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, closed)
	})

	t.Run("No pending periods", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)
		weeklyRepo.EXPECT().FindPending(gomock.Any(), now).Return(nil, nil)

		closed, err := service.DistributePending(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, closed)
	})
}

func TestClaimReward(t *testing.T) {
	reward := domain.WeeklyReward{
		ID:             "reward-1",
		WeeklyPeriodID: "period-1",
		UserID:         "alice",
		Rank:           1,
		RewardAmount:   120,
	}

	t.Run("Owner claims once and is credited", func(t *testing.T) {
		service, weeklyRepo, _, userRepo := NewMock(t)

		r := reward
		weeklyRepo.EXPECT().FindRewardByID(gomock.Any(), "reward-1").Return(&r, nil)
		weeklyRepo.EXPECT().MarkClaimed(gomock.Any(), "reward-1").Return(true, nil)
		userRepo.EXPECT().IncrementBalance(gomock.Any(), "alice", int64(120)).Return(true, nil)

		claimed, err := service.ClaimReward(context.Background(), "reward-1", "alice")
		require.NoError(t, err)
		assert.True(t, claimed.IsClaimed)
	})

	t.Run("Second claim rejected", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)

		r := reward
		r.IsClaimed = true
		weeklyRepo.EXPECT().FindRewardByID(gomock.Any(), "reward-1").Return(&r, nil)

		_, err := service.ClaimReward(context.Background(), "reward-1", "alice")
		assert.ErrorIs(t, err, ErrRewardAlreadyClaimed)
	})

	t.Run("Concurrent claim loses the flag race", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)

		r := reward
		weeklyRepo.EXPECT().FindRewardByID(gomock.Any(), "reward-1").Return(&r, nil)
		weeklyRepo.EXPECT().MarkClaimed(gomock.Any(), "reward-1").Return(false, nil)

		_, err := service.ClaimReward(context.Background(), "reward-1", "alice")
		assert.ErrorIs(t, err, ErrRewardAlreadyClaimed)
	})

	t.Run("Someone else's reward", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)

		r := reward
		weeklyRepo.EXPECT().FindRewardByID(gomock.Any(), "reward-1").Return(&r, nil)

		_, err := service.ClaimReward(context.Background(), "reward-1", "mallory")
		assert.ErrorIs(t, err, ErrRewardNotOwned)
	})

	t.Run("Unknown reward", func(t *testing.T) {
		service, weeklyRepo, _, _ := NewMock(t)
		weeklyRepo.EXPECT().FindRewardByID(gomock.Any(), "reward-1").Return(nil, nil)

		_, err := service.ClaimReward(context.Background(), "reward-1", "alice")
		assert.ErrorIs(t, err, ErrRewardNotFound)
	})
}

func TestLeaderboard(t *testing.T) {
	service, weeklyRepo, resultRepo, _ := NewMock(t)

	at := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	start := WeekStart(at)
	period := domain.WeeklyPeriod{ID: "period-1", WeekStart: start, WeekEnd: WeekEnd(start)}

	weeklyRepo.EXPECT().GetOrCreatePeriod(gomock.Any(), start, WeekEnd(start)).Return(&period, nil)
	resultRepo.EXPECT().FindByWindow(gomock.Any(), start, WeekEnd(start)).
		Return(winsAgainst("alice", 540, 30, "o1", "o2"), nil)

	standings, got, err := service.Leaderboard(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, "period-1", got.ID)
	require.Len(t, standings, 3)
	assert.Equal(t, "alice", standings[0].UserID)
	assert.Equal(t, 2, standings[0].MatchesPlayed)
}
