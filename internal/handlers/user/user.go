package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/dto"
	userservice "github.com/solrps/arena/internal/service/userservice"
	"github.com/solrps/arena/pkg/identity"
	"github.com/solrps/arena/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, id, displayName string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}

type MatchService interface {
	GetMatches(ctx context.Context, userID string) ([]domain.SettledMatch, error)
}

type UserHandler struct {
	userService  Service
	matchService MatchService
}

func New(userService Service, matchService MatchService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		matchService: matchService,
	}
}

// Register godoc
//
//	@Summary		Register a player
//	@Description	Create a player account with the starting balance. Ids are caller-chosen and immutable.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Player id and display name"
//	@Success		201		{object}	dto.UserResponseDTO		"Created player"
//	@Failure		400		{object}	utils.Response			"Malformed request body"
//	@Failure		409		{object}	utils.Response			"Id already taken"
//	@Failure		422		{object}	utils.Response			"Empty id"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), req.UserID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, userservice.ErrInvalidID):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toUserDTO(user))
}

// GetMe godoc
//
//	@Summary		Get own profile and balance
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header		string				true	"Caller id"
//	@Success		200			{object}	dto.UserResponseDTO	"Profile with balance"
//	@Failure		401			{object}	utils.Response		"Caller not registered"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/user/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())

	user, err := h.userService.Get(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// GetMatches godoc
//
//	@Summary		Get match history
//	@Description	Settled matches the caller took part in, newest first.
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Caller id"
//	@Success		200			{array}		dto.MatchHistoryItemDTO	"Match history"
//	@Success		204			{object}	utils.Response			"No matches yet"
//	@Failure		401			{object}	utils.Response			"Caller not registered"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/user/matches [get]
func (h *UserHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())

	matches, err := h.matchService.GetMatches(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	if len(matches) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No matches yet")
		return
	}

	response := make([]dto.MatchHistoryItemDTO, len(matches))
	for i, m := range matches {
		outcomes := make([]dto.RoundOutcomeDTO, len(m.RoundsOutcome))
		for j, o := range m.RoundsOutcome {
			outcomes[j] = dto.RoundOutcomeDTO{
				Round:  o.Round,
				A:      string(o.A),
				B:      string(o.B),
				Winner: string(o.Winner),
			}
		}
		response[i] = dto.MatchHistoryItemDTO{
			MatchResultResponseDTO: dto.MatchResultResponseDTO{
				SessionID:      m.SessionID,
				RoundsOutcome:  outcomes,
				CreatorWins:    m.CreatorWins,
				ChallengerWins: m.ChallengerWins,
				Draws:          m.Draws,
				Overall:        string(m.Overall),
				Pot:            m.Pot,
				FeesTreasury:   m.FeesTreasury,
				FeesBurn:       m.FeesBurn,
				PayoutWinner:   m.PayoutWinner,
				WinnerUserID:   m.WinnerUserID,
				CreatedAt:      m.CreatedAt,
			},
			CreatorID:    m.CreatorID,
			ChallengerID: m.ChallengerID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toUserDTO(u *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Balance:     u.Balance,
		CreatedAt:   u.CreatedAt,
	}
}
