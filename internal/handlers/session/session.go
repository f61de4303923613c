package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/dto"
	sessionservice "github.com/solrps/arena/internal/service/sessionservice"
	"github.com/solrps/arena/pkg/game"
	"github.com/solrps/arena/pkg/identity"
	"github.com/solrps/arena/pkg/utils"
)

type Service interface {
	CreateSession(ctx context.Context, creatorID string, in sessionservice.CreateSessionInput) (*domain.Session, error)
	CancelSession(ctx context.Context, sessionID, callerID string) error
	JoinSession(ctx context.Context, sessionID, challengerID string, moves []game.Move) (*domain.Session, error)
	RevealSession(ctx context.Context, sessionID, callerID string, moves []game.Move, salt string) (*domain.MatchResult, error)
	ForfeitSession(ctx context.Context, sessionID, callerID string) (*domain.MatchResult, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, *domain.MatchResult, error)
	ListOpen(ctx context.Context, limit int) ([]domain.Session, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Session, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

const defaultLobbyLimit = 50

// CreateSession godoc
//
//	@Summary		Open a new wager session
//	@Description	Escrow the caller's total stake and publish a session holding only the move commitment digest.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string						true	"Caller id"
//	@Param			request		body		dto.CreateSessionRequestDTO	true	"Session parameters"
//	@Success		201			{object}	dto.SessionResponseDTO		"Created session"
//	@Failure		400			{object}	utils.Response				"Malformed request body"
//	@Failure		401			{object}	utils.Response				"Caller not registered"
//	@Failure		402			{object}	utils.Response				"Insufficient balance"
//	@Failure		422			{object}	utils.Response				"Invalid rounds, stake or commit hash"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())

	var req dto.CreateSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), callerID, sessionservice.CreateSessionInput{
		Rounds:        req.Rounds,
		StakePerRound: req.StakePerRound,
		CommitHash:    req.CommitHash,
		IsPrivate:     req.IsPrivate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSessionDTO(session))
}

// GetSession godoc
//
//	@Summary		Get a session
//	@Description	Fetch a session by id; settled sessions include their match result.
//	@Tags			Sessions
//	@Produce		json
//	@Param			sessionID	path		string							true	"Session id"
//	@Success		200			{object}	dto.SessionDetailResponseDTO	"Session with optional result"
//	@Failure		404			{object}	utils.Response					"Session not found"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, result, err := h.sessionService.GetSession(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dto.SessionDetailResponseDTO{Session: toSessionDTO(session)}
	if result != nil {
		r := toResultDTO(result)
		resp.Result = &r
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListOpen godoc
//
//	@Summary		List joinable sessions
//	@Description	Public OPEN sessions, newest first. Private sessions never appear here.
//	@Tags			Sessions
//	@Produce		json
//	@Param			limit	query		int						false	"Page size, defaults to 50"
//	@Success		200		{array}		dto.SessionResponseDTO	"Open sessions"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions [get]
func (h *SessionHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	limit := defaultLobbyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	sessions, err := h.sessionService.ListOpen(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTOs(sessions))
}

// ListMine godoc
//
//	@Summary		List caller's sessions
//	@Description	Every session the caller created or joined, newest first.
//	@Tags			Sessions
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Caller id"
//	@Success		200			{array}		dto.SessionResponseDTO	"Caller's sessions"
//	@Failure		401			{object}	utils.Response			"Caller not registered"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/user/sessions [get]
func (h *SessionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())

	sessions, err := h.sessionService.ListByUser(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTOs(sessions))
}

// JoinSession godoc
//
//	@Summary		Join an open session
//	@Description	Escrow the matching stake and submit plaintext moves; starts the creator's reveal clock.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Caller id"
//	@Param			sessionID	path		string					true	"Session id"
//	@Param			request		body		dto.JoinSessionRequestDTO	true	"Challenger moves"
//	@Success		200			{object}	dto.SessionResponseDTO	"Session now awaiting reveal"
//	@Failure		400			{object}	utils.Response			"Malformed request body"
//	@Failure		401			{object}	utils.Response			"Caller not registered"
//	@Failure		402			{object}	utils.Response			"Insufficient balance"
//	@Failure		404			{object}	utils.Response			"Session not found"
//	@Failure		409			{object}	utils.Response			"Session not open or self join"
//	@Failure		422			{object}	utils.Response			"Invalid moves"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{sessionID}/join [post]
func (h *SessionHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	var req dto.JoinSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	moves, err := game.ParseMoves(req.Moves)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	session, err := h.sessionService.JoinSession(r.Context(), sessionID, callerID, moves)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

// RevealSession godoc
//
//	@Summary		Reveal committed moves
//	@Description	Verify the creator's moves and salt against the commitment, judge the match and settle the pot.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string						true	"Caller id"
//	@Param			sessionID	path		string						true	"Session id"
//	@Param			request		body		dto.RevealSessionRequestDTO	true	"Plaintext moves and salt"
//	@Success		200			{object}	dto.MatchResultResponseDTO	"Settled match result"
//	@Failure		400			{object}	utils.Response				"Malformed request body"
//	@Failure		401			{object}	utils.Response				"Caller not registered"
//	@Failure		403			{object}	utils.Response				"Caller is not the creator"
//	@Failure		404			{object}	utils.Response				"Session not found"
//	@Failure		409			{object}	utils.Response				"Wrong state or deadline passed"
//	@Failure		422			{object}	utils.Response				"Invalid moves or commitment mismatch"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/sessions/{sessionID}/reveal [post]
func (h *SessionHandler) RevealSession(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	var req dto.RevealSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	moves, err := game.ParseMoves(req.Moves)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.sessionService.RevealSession(r.Context(), sessionID, callerID, moves, req.Salt)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResultDTO(result))
}

// ForfeitSession godoc
//
//	@Summary		Claim a forfeit win
//	@Description	After the reveal deadline passes the challenger claims the pot minus fees.
//	@Tags			Sessions
//	@Produce		json
//	@Param			X-User-ID	header		string						true	"Caller id"
//	@Param			sessionID	path		string						true	"Session id"
//	@Success		200			{object}	dto.MatchResultResponseDTO	"Forfeit result"
//	@Failure		401			{object}	utils.Response				"Caller not registered"
//	@Failure		403			{object}	utils.Response				"Caller is not the challenger"
//	@Failure		404			{object}	utils.Response				"Session not found"
//	@Failure		409			{object}	utils.Response				"Wrong state or deadline still running"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/sessions/{sessionID}/forfeit [post]
func (h *SessionHandler) ForfeitSession(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.sessionService.ForfeitSession(r.Context(), sessionID, callerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResultDTO(result))
}

// CancelSession godoc
//
//	@Summary		Cancel an open session
//	@Description	The creator withdraws an unjoined session and gets the escrowed stake back.
//	@Tags			Sessions
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Caller id"
//	@Param			sessionID	path		string			true	"Session id"
//	@Success		200			{object}	utils.Response	"Session cancelled"
//	@Failure		401			{object}	utils.Response	"Caller not registered"
//	@Failure		403			{object}	utils.Response	"Caller is not the creator"
//	@Failure		404			{object}	utils.Response	"Session not found"
//	@Failure		409			{object}	utils.Response	"Session not open"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions/{sessionID}/cancel [post]
func (h *SessionHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	callerID := identity.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.sessionService.CancelSession(r.Context(), sessionID, callerID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "session cancelled"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionservice.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sessionservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, sessionservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, sessionservice.ErrNotCreator),
		errors.Is(err, sessionservice.ErrNotChallenger):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, sessionservice.ErrSessionNotOpen),
		errors.Is(err, sessionservice.ErrSessionNotAwaitingReveal),
		errors.Is(err, sessionservice.ErrSelfJoin),
		errors.Is(err, sessionservice.ErrDeadlinePassed),
		errors.Is(err, sessionservice.ErrDeadlineNotPassed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, sessionservice.ErrInvalidRounds),
		errors.Is(err, sessionservice.ErrInvalidStake),
		errors.Is(err, sessionservice.ErrInvalidCommitHash),
		errors.Is(err, sessionservice.ErrMovesCountMismatch),
		errors.Is(err, sessionservice.ErrCommitMismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSessionDTO(s *domain.Session) dto.SessionResponseDTO {
	out := dto.SessionResponseDTO{
		ID:             s.ID,
		Status:         string(s.Status),
		Rounds:         s.Rounds,
		StakePerRound:  s.StakePerRound,
		TotalStake:     s.TotalStake,
		CreatorID:      s.CreatorID,
		ChallengerID:   s.ChallengerID,
		CommitHash:     s.CommitHash,
		RevealDeadline: s.RevealDeadline,
		IsPrivate:      s.IsPrivate,
		CreatedAt:      s.CreatedAt,
		ResolvedAt:     s.ResolvedAt,
	}
	// Creator moves stay hidden until the session is settled.
	if s.Status == domain.StatusResolved && len(s.CreatorMoves) > 0 {
		out.CreatorMoves = make([]string, len(s.CreatorMoves))
		for i, m := range s.CreatorMoves {
			out.CreatorMoves[i] = string(m)
		}
	}
	return out
}

func toSessionDTOs(sessions []domain.Session) []dto.SessionResponseDTO {
	out := make([]dto.SessionResponseDTO, len(sessions))
	for i := range sessions {
		out[i] = toSessionDTO(&sessions[i])
	}
	return out
}

func toResultDTO(r *domain.MatchResult) dto.MatchResultResponseDTO {
	outcomes := make([]dto.RoundOutcomeDTO, len(r.RoundsOutcome))
	for i, o := range r.RoundsOutcome {
		outcomes[i] = dto.RoundOutcomeDTO{
			Round:  o.Round,
			A:      string(o.A),
			B:      string(o.B),
			Winner: string(o.Winner),
		}
	}
	return dto.MatchResultResponseDTO{
		SessionID:      r.SessionID,
		RoundsOutcome:  outcomes,
		CreatorWins:    r.CreatorWins,
		ChallengerWins: r.ChallengerWins,
		Draws:          r.Draws,
		Overall:        string(r.Overall),
		Pot:            r.Pot,
		FeesTreasury:   r.FeesTreasury,
		FeesBurn:       r.FeesBurn,
		PayoutWinner:   r.PayoutWinner,
		WinnerUserID:   r.WinnerUserID,
		CreatedAt:      r.CreatedAt,
	}
}
