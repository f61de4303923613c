package sessionservice

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
	"github.com/solrps/arena/pkg/game"
)

type SessionRepo interface {
	Save(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	FindOpen(ctx context.Context, limit int) ([]domain.Session, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Session, error)
	MarkJoined(ctx context.Context, id, challengerID string, moves []game.Move, deadline time.Time) (bool, error)
	MarkResolved(ctx context.Context, id string, creatorMoves []game.Move, at time.Time) (bool, error)
	MarkForfeited(ctx context.Context, id string, at time.Time) (bool, error)
	MarkCancelled(ctx context.Context, id string, at time.Time) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	IncrementBalance(ctx context.Context, userID string, delta int64) (bool, error)
}

type ResultRepo interface {
	Save(ctx context.Context, result *domain.MatchResult) error
	FindBySessionID(ctx context.Context, sessionID string) (*domain.MatchResult, error)
	FindByUser(ctx context.Context, userID string) ([]domain.SettledMatch, error)
}

type Service struct {
	sessionRepo  SessionRepo
	userRepo     UserRepo
	resultRepo   ResultRepo
	txManager    pg.TXManager
	revealWindow time.Duration
}

func New(sessionRepo SessionRepo, userRepo UserRepo, resultRepo ResultRepo, txManager pg.TXManager, revealWindow time.Duration) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		resultRepo:   resultRepo,
		txManager:    txManager,
		revealWindow: revealWindow,
	}
}

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrSessionNotFound          = errors.New("session not found")
	ErrSessionNotOpen           = errors.New("session is not open")
	ErrSessionNotAwaitingReveal = errors.New("session is not awaiting reveal")
	ErrNotCreator               = errors.New("only the session creator can perform this action")
	ErrNotChallenger            = errors.New("only the challenger can claim forfeit")
	ErrSelfJoin                 = errors.New("cannot join own session")
	ErrInsufficientBalance      = errors.New("insufficient balance")
	ErrInvalidRounds            = errors.New("rounds must be 1, 3 or 5")
	ErrInvalidStake             = errors.New("stake per round must be 100, 500 or 1000")
	ErrInvalidCommitHash        = errors.New("commit hash must be a 64 character hex digest")
	ErrMovesCountMismatch       = errors.New("move count does not match session rounds")
	ErrCommitMismatch           = errors.New("moves and salt do not match the commitment")
	ErrDeadlinePassed           = errors.New("reveal deadline has passed")
	ErrDeadlineNotPassed        = errors.New("reveal deadline has not passed yet")
	ErrChallengerDataMissing    = errors.New("challenger moves missing from joined session")
)

var commitHashRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

var validStakes = map[int64]struct{}{100: {}, 500: {}, 1000: {}}

type CreateSessionInput struct {
	Rounds        int
	StakePerRound int64
	CommitHash    string
	IsPrivate     bool
}

// CreateSession escrows the creator's total stake and opens a session around
// the commitment digest. The plaintext moves never reach the server here;
// only the digest does.
func (s *Service) CreateSession(ctx context.Context, creatorID string, in CreateSessionInput) (*domain.Session, error) {
	if in.Rounds != 1 && in.Rounds != 3 && in.Rounds != 5 {
		return nil, ErrInvalidRounds
	}
	if _, ok := validStakes[in.StakePerRound]; !ok {
		return nil, ErrInvalidStake
	}
	if !commitHashRe.MatchString(in.CommitHash) {
		return nil, ErrInvalidCommitHash
	}

	totalStake := int64(in.Rounds) * in.StakePerRound
	now := time.Now()
	session := &domain.Session{
		ID:             uuid.NewString(),
		Status:         domain.StatusOpen,
		Rounds:         in.Rounds,
		StakePerRound:  in.StakePerRound,
		TotalStake:     totalStake,
		CreatorID:      creatorID,
		CommitHash:     in.CommitHash,
		RevealDeadline: now.Add(s.revealWindow),
		IsPrivate:      in.IsPrivate,
		CreatedAt:      now,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, creatorID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Balance < totalStake {
			return ErrInsufficientBalance
		}
		debited, err := s.userRepo.IncrementBalance(ctx, creatorID, -totalStake)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		return s.sessionRepo.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("session created",
		zap.String("session_id", session.ID),
		zap.String("creator_id", creatorID),
		zap.Int64("total_stake", totalStake))
	return session, nil
}

// CancelSession refunds the creator's stake while the session is still OPEN.
// A second cancel is rejected, never silently accepted: the conditional
// status flip guarantees the refund happens at most once.
func (s *Service) CancelSession(ctx context.Context, sessionID, callerID string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != domain.StatusOpen {
			return ErrSessionNotOpen
		}
		if session.CreatorID != callerID {
			return ErrNotCreator
		}

		cancelled, err := s.sessionRepo.MarkCancelled(ctx, sessionID, time.Now())
		if err != nil {
			return err
		}
		if !cancelled {
			return ErrSessionNotOpen
		}
		if _, err := s.userRepo.IncrementBalance(ctx, session.CreatorID, session.TotalStake); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("session cancelled", zap.String("session_id", sessionID))
	return nil
}

// JoinSession escrows the challenger's stake, stores their plaintext moves
// and starts the reveal clock. The challenger reveals immediately by design;
// the creator is the committed party.
func (s *Service) JoinSession(ctx context.Context, sessionID, challengerID string, moves []game.Move) (*domain.Session, error) {
	var joined *domain.Session
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != domain.StatusOpen {
			return ErrSessionNotOpen
		}
		if session.CreatorID == challengerID {
			return ErrSelfJoin
		}
		if len(moves) != session.Rounds {
			return ErrMovesCountMismatch
		}

		user, err := s.userRepo.FindByID(ctx, challengerID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Balance < session.TotalStake {
			return ErrInsufficientBalance
		}
		debited, err := s.userRepo.IncrementBalance(ctx, challengerID, -session.TotalStake)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}

		deadline := time.Now().Add(s.revealWindow)
		ok, err := s.sessionRepo.MarkJoined(ctx, sessionID, challengerID, moves, deadline)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSessionNotOpen
		}

		session.Status = domain.StatusAwaitingReveal
		session.ChallengerID = challengerID
		session.ChallengerMoves = moves
		session.RevealDeadline = deadline
		joined = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("session joined",
		zap.String("session_id", sessionID),
		zap.String("challenger_id", challengerID))
	return joined, nil
}

// RevealSession verifies the creator's commitment, judges the match and
// settles the escrowed funds. A commitment mismatch leaves the session
// AWAITING_REVEAL with both stakes locked; the challenger's recourse is the
// forfeit path once the deadline passes.
func (s *Service) RevealSession(ctx context.Context, sessionID, callerID string, moves []game.Move, salt string) (*domain.MatchResult, error) {
	var result *domain.MatchResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != domain.StatusAwaitingReveal {
			return ErrSessionNotAwaitingReveal
		}
		if session.CreatorID != callerID {
			return ErrNotCreator
		}
		if session.ChallengerID == "" || len(session.ChallengerMoves) == 0 {
			return ErrChallengerDataMissing
		}
		if time.Now().After(session.RevealDeadline) {
			return ErrDeadlinePassed
		}
		if len(moves) != session.Rounds {
			return ErrMovesCountMismatch
		}
		if !game.VerifyCommit(session.CommitHash, moves, salt) {
			return ErrCommitMismatch
		}

		tally, err := game.TallyOutcome(moves, session.ChallengerMoves)
		if err != nil {
			return err
		}

		now := time.Now()
		pot := game.CalcPot(session.Rounds, session.StakePerRound)
		result = &domain.MatchResult{
			ID:             uuid.NewString(),
			SessionID:      sessionID,
			RoundsOutcome:  tally.Outcomes,
			CreatorWins:    tally.AWins,
			ChallengerWins: tally.BWins,
			Draws:          tally.Draws,
			Overall:        tally.Overall,
			Pot:            pot,
			CreatedAt:      now,
		}

		if tally.Overall == game.OverallDraw {
			// Both stakes come back untouched; the fee system stays out of draws.
			if _, err := s.userRepo.IncrementBalance(ctx, session.CreatorID, session.TotalStake); err != nil {
				return err
			}
			if _, err := s.userRepo.IncrementBalance(ctx, session.ChallengerID, session.TotalStake); err != nil {
				return err
			}
		} else {
			payout := game.PayoutFromPot(pot)
			result.FeesTreasury = payout.Fees.Treasury
			result.FeesBurn = payout.Fees.Burn
			result.PayoutWinner = payout.Winner
			if tally.Overall == game.OverallCreator {
				result.WinnerUserID = session.CreatorID
			} else {
				result.WinnerUserID = session.ChallengerID
			}
			if _, err := s.userRepo.IncrementBalance(ctx, result.WinnerUserID, payout.Winner); err != nil {
				return err
			}
		}

		resolved, err := s.sessionRepo.MarkResolved(ctx, sessionID, moves, now)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrSessionNotAwaitingReveal
		}
		return s.resultRepo.Save(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("session resolved",
		zap.String("session_id", sessionID),
		zap.String("overall", string(result.Overall)),
		zap.Int64("payout_winner", result.PayoutWinner))
	return result, nil
}

// ForfeitSession lets the challenger claim the pot after the creator missed
// the reveal deadline. Same fee schedule as a played-out win; the recorded
// result carries no round data.
func (s *Service) ForfeitSession(ctx context.Context, sessionID, callerID string) (*domain.MatchResult, error) {
	var result *domain.MatchResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != domain.StatusAwaitingReveal {
			return ErrSessionNotAwaitingReveal
		}
		if session.ChallengerID == "" {
			return ErrChallengerDataMissing
		}
		if !time.Now().After(session.RevealDeadline) {
			return ErrDeadlineNotPassed
		}
		if session.ChallengerID != callerID {
			return ErrNotChallenger
		}

		now := time.Now()
		pot := game.CalcPot(session.Rounds, session.StakePerRound)
		payout := game.PayoutFromPot(pot)
		result = &domain.MatchResult{
			ID:            uuid.NewString(),
			SessionID:     sessionID,
			RoundsOutcome: []game.RoundOutcome{},
			Overall:       game.OverallChallenger,
			Pot:           pot,
			FeesTreasury:  payout.Fees.Treasury,
			FeesBurn:      payout.Fees.Burn,
			PayoutWinner:  payout.Winner,
			WinnerUserID:  session.ChallengerID,
			CreatedAt:     now,
		}

		forfeited, err := s.sessionRepo.MarkForfeited(ctx, sessionID, now)
		if err != nil {
			return err
		}
		if !forfeited {
			return ErrSessionNotAwaitingReveal
		}
		if _, err := s.userRepo.IncrementBalance(ctx, session.ChallengerID, payout.Winner); err != nil {
			return err
		}
		return s.resultRepo.Save(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("session forfeited",
		zap.String("session_id", sessionID),
		zap.String("challenger_id", result.WinnerUserID))
	return result, nil
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, *domain.MatchResult, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}
	if session.Status != domain.StatusResolved && session.Status != domain.StatusForfeited {
		return session, nil, nil
	}
	result, err := s.resultRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, result, nil
}

func (s *Service) ListOpen(ctx context.Context, limit int) ([]domain.Session, error) {
	return s.sessionRepo.FindOpen(ctx, limit)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.sessionRepo.FindByUser(ctx, userID)
}

func (s *Service) GetMatches(ctx context.Context, userID string) ([]domain.SettledMatch, error) {
	return s.resultRepo.FindByUser(ctx, userID)
}
