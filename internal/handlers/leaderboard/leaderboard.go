package leaderboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/dto"
	weeklyservice "github.com/solrps/arena/internal/service/weeklyservice"
	"github.com/solrps/arena/pkg/identity"
	"github.com/solrps/arena/pkg/utils"
)

type Service interface {
	Leaderboard(ctx context.Context, at time.Time) ([]weeklyservice.Standing, *domain.WeeklyPeriod, error)
	ClaimReward(ctx context.Context, rewardID, callerID string) (*domain.WeeklyReward, error)
	ListRewards(ctx context.Context, userID string) ([]domain.WeeklyReward, error)
}

type LeaderboardHandler struct {
	weeklyService Service
}

func New(weeklyService Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		weeklyService: weeklyService,
	}
}

// GetLeaderboard godoc
//
//	@Summary		Current weekly leaderboard
//	@Description	Live standings of the running Monday-to-Monday UTC week, ineligible rows included but flagged. Pass at to view the week containing that instant.
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			at	query		string						false	"RFC3339 instant selecting the week, defaults to now"
//	@Success		200	{object}	dto.LeaderboardResponseDTO	"Standings for the selected week"
//	@Failure		422	{object}	utils.Response				"Malformed at parameter"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "at must be an RFC3339 timestamp")
			return
		}
		at = parsed
	}

	standings, period, err := h.weeklyService.Leaderboard(r.Context(), at)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.LeaderboardResponseDTO{
		WeekStart:     period.WeekStart,
		WeekEnd:       period.WeekEnd,
		IsDistributed: period.IsDistributed,
		Standings:     make([]dto.StandingDTO, len(standings)),
	}
	for i, st := range standings {
		resp.Standings[i] = dto.StandingDTO{
			UserID:        st.UserID,
			Rank:          st.Rank,
			Points:        st.Points,
			Wins:          st.Wins,
			MatchesPlayed: st.MatchesPlayed,
			TotalPayout:   st.TotalPayout,
			Eligible:      st.Eligible,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRewards godoc
//
//	@Summary		List own weekly rewards
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Caller id"
//	@Success		200			{array}		dto.RewardResponseDTO	"Booked rewards"
//	@Success		204			{object}	utils.Response			"No rewards yet"
//	@Failure		401			{object}	utils.Response			"Caller not registered"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *LeaderboardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())

	rewards, err := h.weeklyService.ListRewards(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}
	if len(rewards) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No rewards yet")
		return
	}

	response := make([]dto.RewardResponseDTO, len(rewards))
	for i, rw := range rewards {
		response[i] = toRewardDTO(&rw)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ClaimReward godoc
//
//	@Summary		Claim a weekly reward
//	@Description	Credit a booked reward to the caller's balance. A reward pays out once.
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Caller id"
//	@Param			rewardID	path		string					true	"Reward id"
//	@Success		200			{object}	dto.RewardResponseDTO	"Claimed reward"
//	@Failure		401			{object}	utils.Response			"Caller not registered"
//	@Failure		403			{object}	utils.Response			"Reward belongs to someone else"
//	@Failure		404			{object}	utils.Response			"Reward not found"
//	@Failure		409			{object}	utils.Response			"Reward already claimed"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rewards/{rewardID}/claim [post]
func (h *LeaderboardHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())
	rewardID := chi.URLParam(r, "rewardID")

	reward, err := h.weeklyService.ClaimReward(r.Context(), rewardID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, weeklyservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, weeklyservice.ErrRewardNotOwned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, weeklyservice.ErrRewardAlreadyClaimed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRewardDTO(reward))
}

func toRewardDTO(r *domain.WeeklyReward) dto.RewardResponseDTO {
	return dto.RewardResponseDTO{
		ID:             r.ID,
		WeeklyPeriodID: r.WeeklyPeriodID,
		Rank:           r.Rank,
		Points:         r.Points,
		RewardAmount:   r.RewardAmount,
		IsClaimed:      r.IsClaimed,
		CreatedAt:      r.CreatedAt,
	}
}
