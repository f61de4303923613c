package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/dto"
	weeklyservice "github.com/solrps/arena/internal/service/weeklyservice"
	"github.com/solrps/arena/pkg/identity"
)

func NewMock(t *testing.T) (*LeaderboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func claimRequest(userID, rewardID string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/user/rewards/"+rewardID+"/claim", nil)
	ctx := context.WithValue(r.Context(), identity.UserIDKey, userID)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("rewardID", rewardID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	return r.WithContext(ctx)
}

func TestGetLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	start := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	service.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).Return(
		[]weeklyservice.Standing{
			{UserID: "alice", Rank: 1, Points: 123, Wins: 8, MatchesPlayed: 9, TotalPayout: 4320, Eligible: true},
			{UserID: "bob", Rank: 2, Points: 30, Wins: 2, MatchesPlayed: 5, TotalPayout: 1080, Eligible: false},
		},
		&domain.WeeklyPeriod{ID: "period-1", WeekStart: start, WeekEnd: start.AddDate(0, 0, 7)},
		nil,
	)

	w := httptest.NewRecorder()
	handler.GetLeaderboard(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Standings, 2)
	assert.Equal(t, "alice", resp.Standings[0].UserID)
	assert.Equal(t, 9, resp.Standings[0].MatchesPlayed)
	assert.True(t, resp.Standings[0].Eligible)
	assert.False(t, resp.Standings[1].Eligible)
}

func TestGetLeaderboardHandlerBadAt(t *testing.T) {
	handler, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.GetLeaderboard(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard?at=yesterday", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetRewardsHandler(t *testing.T) {
	t.Run("Rewards listed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListRewards(gomock.Any(), "alice").Return([]domain.WeeklyReward{
			{ID: "reward-1", UserID: "alice", Rank: 1, RewardAmount: 120},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/user/rewards", nil)
		r = r.WithContext(context.WithValue(r.Context(), identity.UserIDKey, "alice"))

		w := httptest.NewRecorder()
		handler.GetRewards(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.RewardResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, int64(120), resp[0].RewardAmount)
	})

	t.Run("No rewards", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListRewards(gomock.Any(), "alice").Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/user/rewards", nil)
		r = r.WithContext(context.WithValue(r.Context(), identity.UserIDKey, "alice"))

		w := httptest.NewRecorder()
		handler.GetRewards(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestClaimRewardHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Claimed",
			prepareMock: func(service *MockService) {
				service.EXPECT().ClaimReward(gomock.Any(), "reward-1", "alice").
					Return(&domain.WeeklyReward{ID: "reward-1", UserID: "alice", RewardAmount: 120, IsClaimed: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already claimed",
			prepareMock: func(service *MockService) {
				service.EXPECT().ClaimReward(gomock.Any(), "reward-1", "alice").
					Return(nil, weeklyservice.ErrRewardAlreadyClaimed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not the owner",
			prepareMock: func(service *MockService) {
				service.EXPECT().ClaimReward(gomock.Any(), "reward-1", "alice").
					Return(nil, weeklyservice.ErrRewardNotOwned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Not found",
			prepareMock: func(service *MockService) {
				service.EXPECT().ClaimReward(gomock.Any(), "reward-1", "alice").
					Return(nil, weeklyservice.ErrRewardNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.ClaimReward(w, claimRequest("alice", "reward-1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
